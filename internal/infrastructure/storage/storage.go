// Package storage elige el adaptador de persistencia según DB_DRIVER y expone
// los repositorios y el TxRunner ya construidos.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
	"github.com/jhoicas/fieldops-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fieldops-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/fieldops-api/pkg/config"
)

// Store agrupa los puertos de persistencia de un driver.
type Store struct {
	Driver     string
	Items      repository.ItemRepository
	Categories repository.CategoryRepository
	Movements  repository.MovementRepository
	Tx         inventory.TxRunner

	ping  func(ctx context.Context) error
	close func()
}

// Ping comprueba que la base responde (health check).
func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close libera conexiones.
func (s *Store) Close() { s.close() }

// Open conecta con el driver configurado y aplica el esquema.
func Open(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("postgres: %w", err)
		}
		log.Info().Str("driver", cfg.Driver).Msg("conectado a PostgreSQL")
		return &Store{
			Driver:     cfg.Driver,
			Items:      postgres.NewItemRepository(pool),
			Categories: postgres.NewCategoryRepository(pool),
			Movements:  postgres.NewMovementRepository(pool),
			Tx:         postgres.NewTxRunner(pool),
			ping:       pool.Ping,
			close:      pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		log.Info().Str("driver", cfg.Driver).Str("path", cfg.SQLitePath).Msg("base SQLite abierta")
		return &Store{
			Driver:     cfg.Driver,
			Items:      sqlite.NewItemRepository(db),
			Categories: sqlite.NewCategoryRepository(db),
			Movements:  sqlite.NewMovementRepository(db),
			Tx:         sqlite.NewTxRunner(db),
			ping:       db.PingContext,
			close:      func() { _ = db.Close() },
		}, nil
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Driver)
}
