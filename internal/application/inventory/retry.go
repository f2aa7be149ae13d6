package inventory

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

// RetryPolicy controla los reintentos ante domain.ErrConflict.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration // espera inicial; se duplica en cada intento
}

// DefaultRetryPolicy 3 reintentos empezando en 20ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, Backoff: 20 * time.Millisecond}
}

// RunWithRetry ejecuta fn en una transacción y la repite completa (relee, recalcula) si falla
// por conflicto de concurrencia. Cualquier otro error se devuelve sin reintentar.
// Agotados los reintentos devuelve un error que sigue cumpliendo errors.Is(err, domain.ErrConflict).
func RunWithRetry(
	ctx context.Context,
	runner TxRunner,
	policy RetryPolicy,
	log zerolog.Logger,
	op string,
	fn func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error,
) error {
	backoff := policy.Backoff
	for attempt := 0; ; attempt++ {
		err := runner.Run(ctx, fn)
		if err == nil || !errors.Is(err, domain.ErrConflict) {
			return err
		}
		if attempt >= policy.MaxRetries {
			log.Warn().Err(err).Str("op", op).Int("attempts", attempt+1).
				Msg("conflicto de concurrencia, reintentos agotados")
			return fmt.Errorf("%s tras %d intentos: %w", op, attempt+1, err)
		}
		log.Debug().Err(err).Str("op", op).Int("attempt", attempt+1).Msg("conflicto de concurrencia, reintentando")

		wait := backoff
		if backoff > 0 {
			wait += time.Duration(rand.Int63n(int64(backoff/4) + 1))
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff *= 2
	}
}
