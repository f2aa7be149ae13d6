// Package sqlite es el adaptador embebido (desarrollo, nodo único y tests) sobre
// modernc.org/sqlite + sqlx. Usa una sola conexión: toda escritura queda serializada,
// por lo que GetForUpdate no necesita bloqueo explícito.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// Open abre la base, configura pragmas y crea el esquema si no existe.
// path puede ser ":memory:".
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Una conexión viva para siempre: con :memory: cerrarla borraría la base.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id          TEXT PRIMARY KEY,
    company_id  TEXT NOT NULL,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at  INTEGER NOT NULL,
    updated_at  INTEGER NOT NULL,
    UNIQUE (company_id, name)
);

CREATE TABLE IF NOT EXISTS items (
    id           TEXT PRIMARY KEY,
    company_id   TEXT NOT NULL,
    category_id  TEXT REFERENCES categories (id) ON DELETE SET NULL,
    sku          TEXT,
    name         TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    unit_price   TEXT NOT NULL DEFAULT '0',
    cost_price   TEXT NOT NULL DEFAULT '0',
    quantity     INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    min_quantity INTEGER NOT NULL DEFAULT 0 CHECK (min_quantity >= 0),
    status       TEXT NOT NULL CHECK (status IN ('active', 'low_stock', 'discontinued')),
    discontinued INTEGER NOT NULL DEFAULT 0,
    version      INTEGER NOT NULL DEFAULT 1,
    created_at   INTEGER NOT NULL,
    updated_at   INTEGER NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS ux_items_company_sku ON items (company_id, sku) WHERE sku IS NOT NULL;
CREATE INDEX IF NOT EXISTS ix_items_company_status ON items (company_id, status);

CREATE TABLE IF NOT EXISTS inventory_movements (
    id         TEXT PRIMARY KEY,
    company_id TEXT NOT NULL,
    item_id    TEXT NOT NULL,
    type       TEXT NOT NULL CHECK (type IN ('in', 'out', 'adjust')),
    quantity   INTEGER NOT NULL CHECK (quantity > 0),
    notes      TEXT NOT NULL DEFAULT '',
    created_by TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_movements_company_item ON inventory_movements (company_id, item_id, created_at);
`

// EnsureSchema crea tablas e índices (idempotente).
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema sqlite: %w", err)
	}
	return nil
}
