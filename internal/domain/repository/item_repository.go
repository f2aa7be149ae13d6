package repository

import (
	"context"

	"github.com/jhoicas/fieldops-api/internal/domain/entity"
)

// ItemFilter filtros opcionales para listar ítems. Limit <= 0 devuelve todos.
type ItemFilter struct {
	Status     string
	CategoryID string
	Limit      int
	Offset     int
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// Todas las lecturas están acotadas a la empresa; un ítem de otra empresa no existe.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	// GetByID devuelve (nil, nil) si el ítem no existe para la empresa.
	GetByID(ctx context.Context, companyID, id string) (*entity.Item, error)
	// GetForUpdate lee el ítem bloqueándolo hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, companyID, id string) (*entity.Item, error)
	GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Item, error)
	// Update persiste atributos de catálogo y estado (nunca Quantity) si la versión
	// almacenada coincide con expectedVersion; si no, devuelve domain.ErrConflict.
	Update(ctx context.Context, item *entity.Item, expectedVersion int64) error
	// UpdateStock persiste Quantity y Status con la misma condición de versión.
	UpdateStock(ctx context.Context, item *entity.Item, expectedVersion int64) error
	ListByCompany(ctx context.Context, companyID string, filter ItemFilter) ([]*entity.Item, error)
	// Delete borra el ítem; devuelve false si no existía.
	Delete(ctx context.Context, companyID, id string) (bool, error)
}
