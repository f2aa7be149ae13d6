package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
)

func TestMovementHistory_MasRecientesPrimero(t *testing.T) {
	f := newFixture(t)
	a := f.seed(t, itemSeed{quantity: 10})
	b := f.seed(t, itemSeed{quantity: 10})

	_, err := f.record(a.ID, entity.MovementTypeIn, 1)
	require.NoError(t, err)
	_, err = f.record(b.ID, entity.MovementTypeOut, 2)
	require.NoError(t, err)
	_, err = f.record(a.ID, entity.MovementTypeAdjust, 3)
	require.NoError(t, err)

	uc := inventory.NewMovementHistoryUseCase(f.movements)

	all, err := uc.List(context.Background(), companyID, dto.MovementListQuery{})
	require.NoError(t, err)
	require.Len(t, all.Items, 3)
	assert.Equal(t, int64(3), all.Items[0].Quantity)
	assert.Equal(t, int64(1), all.Items[2].Quantity)
	assert.Equal(t, 20, all.Page.Limit)

	onlyA, err := uc.List(context.Background(), companyID, dto.MovementListQuery{ItemID: a.ID})
	require.NoError(t, err)
	require.Len(t, onlyA.Items, 2)
	assert.Equal(t, entity.MovementTypeAdjust, onlyA.Items[0].Type)
	assert.Equal(t, entity.MovementTypeIn, onlyA.Items[1].Type)
}

func TestMovementHistory_ItemDesconocidoDevuelveVacio(t *testing.T) {
	f := newFixture(t)
	foreign := f.seed(t, itemSeed{company: "otra-empresa", quantity: 10})
	uc := inventory.NewMovementHistoryUseCase(f.movements)
	for _, id := range []string{"no-existe", foreign.ID} {
		out, err := uc.List(context.Background(), companyID, dto.MovementListQuery{ItemID: id})
		require.NoError(t, err)
		assert.Empty(t, out.Items)
	}
}

func TestMovementHistory_RangoInvalido(t *testing.T) {
	f := newFixture(t)
	from := time.Now()
	to := from.Add(-time.Hour)
	_, err := inventory.NewMovementHistoryUseCase(f.movements).
		List(context.Background(), companyID, dto.MovementListQuery{From: &from, To: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
