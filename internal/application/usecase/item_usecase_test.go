package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
)

func createItem(t *testing.T, f *fixture, req dto.CreateItemRequest) *dto.ItemResponse {
	t.Helper()
	out, err := f.items.Create(context.Background(), companyID, req)
	require.NoError(t, err)
	return out
}

func TestItemCreate_ClasificaDesdeCantidadInicial(t *testing.T) {
	f := newFixture(t)

	active := createItem(t, f, dto.CreateItemRequest{Name: "  Router  ", Quantity: 10, MinQuantity: 5,
		UnitPrice: decimal.RequireFromString("99.90"), CostPrice: decimal.RequireFromString("60")})
	assert.Equal(t, "Router", active.Name)
	assert.Equal(t, entity.ItemStatusActive, active.Status)
	assert.NotEmpty(t, active.ID)

	low := createItem(t, f, dto.CreateItemRequest{Name: "Cable", Quantity: 5, MinQuantity: 5})
	assert.Equal(t, entity.ItemStatusLowStock, low.Status)

	disc := createItem(t, f, dto.CreateItemRequest{Name: "Módem viejo", Quantity: 50, Discontinued: true})
	assert.Equal(t, entity.ItemStatusDiscontinued, disc.Status)

	// La cantidad inicial no genera movimientos.
	movs, err := f.history.List(context.Background(), companyID, dto.MovementListQuery{})
	require.NoError(t, err)
	assert.Empty(t, movs.Items)
}

func TestItemCreate_Validacion(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		name  string
		req   dto.CreateItemRequest
		field string
	}{
		{"nombre vacío", dto.CreateItemRequest{Name: "   "}, "name"},
		{"precio negativo", dto.CreateItemRequest{Name: "X", UnitPrice: decimal.NewFromInt(-1)}, "unit_price"},
		{"costo negativo", dto.CreateItemRequest{Name: "X", CostPrice: decimal.RequireFromString("-0.01")}, "cost_price"},
		{"cantidad negativa", dto.CreateItemRequest{Name: "X", Quantity: -1}, "quantity"},
		{"mínimo negativo", dto.CreateItemRequest{Name: "X", MinQuantity: -1}, "min_quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.items.Create(context.Background(), companyID, tc.req)
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), "err = %v", err)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}

	list, err := f.items.List(context.Background(), companyID, dto.ItemListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestItemCreate_CategoriaYSKU(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.items.Create(ctx, companyID, dto.CreateItemRequest{Name: "X", CategoryID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	foreignCat, err := f.categories.Create(ctx, "otra-empresa", dto.CategoryRequest{Name: "Redes"})
	require.NoError(t, err)
	_, err = f.items.Create(ctx, companyID, dto.CreateItemRequest{Name: "X", CategoryID: foreignCat.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound, "la categoría de otra empresa no existe para esta")

	createItem(t, f, dto.CreateItemRequest{Name: "Cable", SKU: "CBL-01"})
	_, err = f.items.Create(ctx, companyID, dto.CreateItemRequest{Name: "Otro cable", SKU: " CBL-01 "})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.items.Create(ctx, "otra-empresa", dto.CreateItemRequest{Name: "Cable", SKU: "CBL-01"})
	assert.NoError(t, err)
}

func TestItemUpdate_DescontinuarSinMovimiento(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := createItem(t, f, dto.CreateItemRequest{Name: "Cable", Quantity: 4, MinQuantity: 5})
	require.Equal(t, entity.ItemStatusLowStock, it.Status)

	out, err := f.items.Update(ctx, companyID, it.ID, dto.UpdateItemRequest{Discontinued: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusDiscontinued, out.Status)
	assert.Equal(t, int64(4), out.Quantity)

	movs, err := f.history.List(ctx, companyID, dto.MovementListQuery{ItemID: it.ID})
	require.NoError(t, err)
	assert.Empty(t, movs.Items)

	out, err = f.items.Update(ctx, companyID, it.ID, dto.UpdateItemRequest{Discontinued: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusLowStock, out.Status)
}

func TestItemUpdate_CambioDeUmbralReclasifica(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := createItem(t, f, dto.CreateItemRequest{Name: "Conector", Quantity: 8, MinQuantity: 5})
	require.Equal(t, entity.ItemStatusActive, it.Status)

	out, err := f.items.Update(ctx, companyID, it.ID, dto.UpdateItemRequest{MinQuantity: ptr(int64(8))})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusLowStock, out.Status)

	got, err := f.items.GetByID(ctx, companyID, it.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusLowStock, got.Status)

	out, err = f.items.Update(ctx, companyID, it.ID, dto.UpdateItemRequest{MinQuantity: ptr(int64(2))})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusActive, out.Status)
}

func TestItemUpdate_UsaCantidadVigente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := createItem(t, f, dto.CreateItemRequest{Name: "Conector", Quantity: 10, MinQuantity: 5})

	_, err := f.register.RegisterMovement(ctx, inventory.MovementInputDTO{
		CompanyID: companyID, ItemID: it.ID, Type: entity.MovementTypeOut, Quantity: 4,
	})
	require.NoError(t, err)

	// El parche se aplica sobre la cantidad actual (6), no sobre la de creación.
	out, err := f.items.Update(ctx, companyID, it.ID, dto.UpdateItemRequest{
		Name: ptr("Conector RJ45"), MinQuantity: ptr(int64(6)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), out.Quantity)
	assert.Equal(t, entity.ItemStatusLowStock, out.Status)
	assert.Equal(t, "Conector RJ45", out.Name)
}

func TestItemUpdate_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := createItem(t, f, dto.CreateItemRequest{Name: "A", SKU: "A-1"})
	createItem(t, f, dto.CreateItemRequest{Name: "B", SKU: "B-1"})

	_, err := f.items.Update(ctx, companyID, "no-existe", dto.UpdateItemRequest{Name: ptr("Z")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.items.Update(ctx, "otra-empresa", a.ID, dto.UpdateItemRequest{Name: ptr("Z")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.items.Update(ctx, companyID, a.ID, dto.UpdateItemRequest{SKU: ptr("B-1")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.items.Update(ctx, companyID, a.ID, dto.UpdateItemRequest{SKU: ptr("A-1")})
	assert.NoError(t, err, "conservar el propio SKU no es duplicado")

	_, err = f.items.Update(ctx, companyID, a.ID, dto.UpdateItemRequest{Name: ptr(" ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.items.Update(ctx, companyID, a.ID, dto.UpdateItemRequest{CostPrice: ptr(decimal.NewFromInt(-5))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.items.Update(ctx, companyID, a.ID, dto.UpdateItemRequest{CategoryID: ptr("no-existe")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Quitar el SKU y la categoría con cadena vacía.
	out, err := f.items.Update(ctx, companyID, a.ID, dto.UpdateItemRequest{SKU: ptr(""), CategoryID: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, out.SKU)
	assert.Empty(t, out.CategoryID)
}

func TestItemUpdate_CantidadNoEditable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := createItem(t, f, dto.CreateItemRequest{Name: "A", Quantity: 3})

	_, err := f.items.Update(ctx, companyID, a.ID, dto.UpdateItemRequest{Name: ptr("A2"), Quantity: ptr(int64(99))})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "quantity", vErr.Field)

	got, err := f.items.GetByID(ctx, companyID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Quantity)
	assert.Equal(t, "A", got.Name, "el parche se rechaza completo")
}

func TestItemDelete_ConservaHistorial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := createItem(t, f, dto.CreateItemRequest{Name: "Cable", Quantity: 10})

	_, err := f.register.RegisterMovement(ctx, inventory.MovementInputDTO{
		CompanyID: companyID, ItemID: it.ID, Type: entity.MovementTypeOut, Quantity: 2,
	})
	require.NoError(t, err)

	require.NoError(t, f.items.Delete(ctx, companyID, it.ID))
	_, err = f.items.GetByID(ctx, companyID, it.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.items.Delete(ctx, companyID, it.ID), domain.ErrNotFound)

	movs, err := f.history.List(ctx, companyID, dto.MovementListQuery{ItemID: it.ID})
	require.NoError(t, err)
	assert.Len(t, movs.Items, 1)

	_, err = f.register.RegisterMovement(ctx, inventory.MovementInputDTO{
		CompanyID: companyID, ItemID: it.ID, Type: entity.MovementTypeIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemList_FiltrosYPaginacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, err := f.categories.Create(ctx, companyID, dto.CategoryRequest{Name: "Redes"})
	require.NoError(t, err)

	createItem(t, f, dto.CreateItemRequest{Name: "Antena", Quantity: 10, MinQuantity: 2, CategoryID: cat.ID})
	createItem(t, f, dto.CreateItemRequest{Name: "Bobina", Quantity: 1, MinQuantity: 2})
	createItem(t, f, dto.CreateItemRequest{Name: "Cable", Quantity: 0, MinQuantity: 2, CategoryID: cat.ID})

	low, err := f.items.List(ctx, companyID, dto.ItemListQuery{Status: entity.ItemStatusLowStock})
	require.NoError(t, err)
	assert.Len(t, low.Items, 2)

	byCat, err := f.items.List(ctx, companyID, dto.ItemListQuery{CategoryID: cat.ID})
	require.NoError(t, err)
	assert.Len(t, byCat.Items, 2)

	page, err := f.items.List(ctx, companyID, dto.ItemListQuery{PageRequest: dto.PageRequest{Limit: 2, Offset: 2}})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Cable", page.Items[0].Name)
	assert.Equal(t, 2, page.Page.Limit)

	_, err = f.items.List(ctx, companyID, dto.ItemListQuery{Status: "agotado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	other, err := f.items.List(ctx, "otra-empresa", dto.ItemListQuery{})
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
