package repository

import (
	"context"

	"github.com/jhoicas/fieldops-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Category, error)
	GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Category, error)
	// Delete borra la categoría; los ítems que la referenciaban quedan sin categoría.
	Delete(ctx context.Context, companyID, id string) (bool, error)
}
