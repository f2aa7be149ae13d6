//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
	"github.com/jhoicas/fieldops-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fieldops-api/pkg/config"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{
		DatabaseURL: fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port()),
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	require.NoError(t, postgres.Migrate(ctx, pool), "las migraciones deben ser idempotentes")
	return pool
}

func newItem(companyID, sku string, qty, min int64) *entity.Item {
	now := time.Now().UTC()
	return &entity.Item{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SKU:         sku,
		Name:        "Ítem " + sku,
		UnitPrice:   decimal.RequireFromString("10.50"),
		CostPrice:   decimal.RequireFromString("2.50"),
		Quantity:    qty,
		MinQuantity: min,
		Status:      entity.ItemStatusActive,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPostgres_ItemsYCategorias(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	items := postgres.NewItemRepository(pool)
	cats := postgres.NewCategoryRepository(pool)

	cat := &entity.Category{ID: uuid.New().String(), CompanyID: "c1", Name: "Cables",
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	require.NoError(t, cats.Create(ctx, cat))

	it := newItem("c1", "CBL-01", 10, 2)
	it.CategoryID = cat.ID
	require.NoError(t, items.Create(ctx, it))

	dup := newItem("c1", "CBL-01", 1, 0)
	assert.ErrorIs(t, items.Create(ctx, dup), domain.ErrDuplicate)
	require.NoError(t, items.Create(ctx, newItem("c2", "CBL-01", 1, 0)), "el SKU es único por empresa")

	got, err := items.GetByID(ctx, "c1", it.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CostPrice.Equal(decimal.RequireFromString("2.50")))
	assert.Equal(t, cat.ID, got.CategoryID)

	foreign, err := items.GetByID(ctx, "c2", it.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	got.Name = "Cable UTP"
	require.NoError(t, items.Update(ctx, got, 1))
	assert.Equal(t, int64(2), got.Version)
	assert.ErrorIs(t, items.Update(ctx, got, 1), domain.ErrConflict)

	deleted, err := cats.Delete(ctx, "c1", cat.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	got, err = items.GetByID(ctx, "c1", it.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CategoryID)
}

func TestPostgres_MovimientosConcurrentes(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	items := postgres.NewItemRepository(pool)

	it := newItem("c1", "", 50, 5)
	require.NoError(t, items.Create(ctx, it))

	uc := inventory.NewRegisterMovementUseCase(postgres.NewTxRunner(pool),
		inventory.RetryPolicy{MaxRetries: 10, Backoff: 5 * time.Millisecond}, zerolog.Nop())

	const workers = 60
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		ok, rejected int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RegisterMovement(ctx, inventory.MovementInputDTO{
				CompanyID: "c1", UserID: "u1", ItemID: it.ID, Type: entity.MovementTypeOut, Quantity: 1,
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else {
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, ok)
	assert.Equal(t, 10, rejected)

	final, err := items.GetByID(ctx, "c1", it.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), final.Quantity)
	assert.Equal(t, entity.ItemStatusLowStock, final.Status)

	movs, err := postgres.NewMovementRepository(pool).ListByCompany(ctx, "c1", repository.MovementFilter{ItemID: it.ID})
	require.NoError(t, err)
	assert.Len(t, movs, 50)
}
