package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/fieldops-api/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// classify traduce errores del driver a errores de dominio. Los fallos de bloqueo o
// serialización son ErrConflict para que el caso de uso reintente.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidInput, pgErr.ConstraintName)
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
