package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/fieldops-api/internal/domain"
)

// classify traduce errores de SQLite a errores de dominio. modernc no exporta códigos
// estables como sentinelas, así que se reconoce el mensaje del motor.
func classify(op string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case strings.Contains(msg, "CHECK constraint failed"):
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
	case strings.Contains(msg, "SQLITE_BUSY"), strings.Contains(msg, "database is locked"):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toNanos(t time.Time) int64 { return t.UnixNano() }

func fromNanos(n int64) time.Time { return time.Unix(0, n).UTC() }
