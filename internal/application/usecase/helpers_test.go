package usecase_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/application/usecase"
	"github.com/jhoicas/fieldops-api/internal/infrastructure/sqlite"
)

const companyID = "empresa-1"

type fixture struct {
	items      *usecase.ItemUseCase
	categories *usecase.CategoryUseCase
	register   *inventory.RegisterMovementUseCase
	history    *inventory.MovementHistoryUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := sqlite.NewTestDB(t)
	itemRepo := sqlite.NewItemRepository(db)
	catRepo := sqlite.NewCategoryRepository(db)
	movRepo := sqlite.NewMovementRepository(db)
	tx := sqlite.NewTxRunner(db)
	retry := inventory.RetryPolicy{MaxRetries: 3, Backoff: time.Millisecond}
	return &fixture{
		items:      usecase.NewItemUseCase(itemRepo, catRepo, tx, retry, zerolog.Nop()),
		categories: usecase.NewCategoryUseCase(catRepo),
		register:   inventory.NewRegisterMovementUseCase(tx, retry, zerolog.Nop()),
		history:    inventory.NewMovementHistoryUseCase(movRepo),
	}
}

func ptr[T any](v T) *T { return &v }
