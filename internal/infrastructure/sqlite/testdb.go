package sqlite

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
)

// NewTestDB abre una base en memoria con el esquema creado y la cierra al terminar el test.
func NewTestDB(t testing.TB) *sqlx.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("abrir sqlite en memoria: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
