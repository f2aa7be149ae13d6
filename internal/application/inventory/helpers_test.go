package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	domaininv "github.com/jhoicas/fieldops-api/internal/domain/inventory"
	"github.com/jhoicas/fieldops-api/internal/infrastructure/sqlite"
)

const companyID = "empresa-1"

type fixture struct {
	db        *sqlx.DB
	items     *sqlite.ItemRepo
	movements *sqlite.MovementRepo
	register  *inventory.RegisterMovementUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := sqlite.NewTestDB(t)
	return &fixture{
		db:        db,
		items:     sqlite.NewItemRepository(db),
		movements: sqlite.NewMovementRepository(db),
		register: inventory.NewRegisterMovementUseCase(sqlite.NewTxRunner(db),
			inventory.RetryPolicy{MaxRetries: 3, Backoff: time.Millisecond}, zerolog.Nop()),
	}
}

type itemSeed struct {
	company      string
	name         string
	quantity     int64
	min          int64
	discontinued bool
	cost         string
}

func (f *fixture) seed(t *testing.T, s itemSeed) *entity.Item {
	t.Helper()
	if s.company == "" {
		s.company = companyID
	}
	if s.name == "" {
		s.name = "Ítem " + uuid.NewString()[:8]
	}
	if s.cost == "" {
		s.cost = "0"
	}
	now := time.Now().UTC()
	it := &entity.Item{
		ID:           uuid.New().String(),
		CompanyID:    s.company,
		Name:         s.name,
		CostPrice:    decimal.RequireFromString(s.cost),
		Quantity:     s.quantity,
		MinQuantity:  s.min,
		Discontinued: s.discontinued,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	domaininv.Reclassify(it)
	require.NoError(t, f.items.Create(context.Background(), it))
	return it
}

func (f *fixture) reload(t *testing.T, it *entity.Item) *entity.Item {
	t.Helper()
	got, err := f.items.GetByID(context.Background(), it.CompanyID, it.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	return got
}

func (f *fixture) record(itemID, typ string, qty int64) (*entity.Movement, error) {
	return f.register.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		CompanyID: companyID,
		UserID:    "tecnico-1",
		ItemID:    itemID,
		Type:      typ,
		Quantity:  qty,
	})
}
