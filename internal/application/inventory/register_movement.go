package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

const maxNotesLength = 500

// RegisterMovementUseCase es el único camino de escritura de Item.Quantity.
// Cada movimiento se aplica en una transacción con la fila del ítem bloqueada
// (SELECT FOR UPDATE) y escritura condicionada por versión; Commit o Rollback completo.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	retry    RetryPolicy
	log      zerolog.Logger
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, retry RetryPolicy, log zerolog.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		retry:    retry,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// MovementInputDTO entrada para registrar un movimiento de inventario.
type MovementInputDTO struct {
	CompanyID string
	UserID    string
	ItemID    string
	Type      string // in, out, adjust
	Quantity  int64  // magnitud positiva
	Notes     string
}

func (in MovementInputDTO) validate() error {
	if in.CompanyID == "" {
		return domain.NewValidationError("company_id", "es requerido")
	}
	if strings.TrimSpace(in.ItemID) == "" {
		return domain.NewValidationError("item_id", "es requerido")
	}
	if !entity.IsValidMovementType(in.Type) {
		return domain.NewValidationError("type", "debe ser in, out o adjust")
	}
	if in.Quantity <= 0 {
		return domain.NewValidationError("quantity", "debe ser un entero positivo")
	}
	if len(in.Notes) > maxNotesLength {
		return domain.NewValidationError("notes", "máximo 500 caracteres")
	}
	return nil
}

// RegisterMovement valida la entrada, aplica el movimiento y devuelve el movimiento persistido.
//
// Retorna:
//   - *domain.ValidationError        entrada inválida (antes de abrir transacción).
//   - domain.ErrNotFound             el ítem no existe para la empresa.
//   - *domain.InsufficientStockError una salida dejaría la cantidad en negativo; nada se persiste.
//   - domain.ErrConflict             contención persistente tras agotar reintentos.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*entity.Movement, error) {
	mov, _, err := uc.apply(ctx, input)
	return mov, err
}

// apply devuelve también el ítem tal como quedó tras el movimiento.
func (uc *RegisterMovementUseCase) apply(ctx context.Context, input MovementInputDTO) (*entity.Movement, *entity.Item, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	var (
		mov  *entity.Movement
		item *entity.Item
	)
	err := RunWithRetry(ctx, uc.txRunner, uc.retry, uc.log, "registrar movimiento", func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		// 1. Leer la cantidad actual con la fila bloqueada
		current, err := itemRepo.GetForUpdate(ctx, input.CompanyID, input.ItemID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		// 2-3. Cantidad candidata; si sería negativa se rechaza antes de escribir nada
		candidate, err := inventory.CandidateQuantity(current.ID, current.Quantity, input.Type, input.Quantity)
		if err != nil {
			return err
		}

		// 4-5. Persistir cantidad y estado reclasificado en la misma escritura
		now := uc.now()
		expected := current.Version
		current.Quantity = candidate
		inventory.Reclassify(current)
		current.UpdatedAt = now
		if err := itemRepo.UpdateStock(ctx, current, expected); err != nil {
			return err
		}

		// 6. Registrar el movimiento con la magnitud y tipo solicitados
		m := &entity.Movement{
			ID:        uuid.New().String(),
			CompanyID: input.CompanyID,
			ItemID:    current.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Notes:     strings.TrimSpace(input.Notes),
			CreatedBy: input.UserID,
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, m); err != nil {
			return err
		}
		mov, item = m, current
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	uc.log.Debug().
		Str("company_id", input.CompanyID).
		Str("item_id", item.ID).
		Str("type", mov.Type).
		Int64("quantity", mov.Quantity).
		Int64("new_quantity", item.Quantity).
		Str("status", item.Status).
		Msg("movimiento registrado")
	return mov, item, nil
}
