package repository

import (
	"context"
	"time"

	"github.com/jhoicas/fieldops-api/internal/domain/entity"
)

// MovementFilter filtros para el historial. ItemID vacío = todos los movimientos de la empresa.
type MovementFilter struct {
	ItemID string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// MovementRepository define el puerto del libro de movimientos. Solo append: no hay Update ni Delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListByCompany devuelve movimientos ordenados por created_at descendente.
	ListByCompany(ctx context.Context, companyID string, filter MovementFilter) ([]*entity.Movement, error)
}
