package inventory

import (
	"context"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

// MovementHistoryUseCase consulta el libro de movimientos (solo lectura).
type MovementHistoryUseCase struct {
	repo repository.MovementRepository
}

// NewMovementHistoryUseCase construye el caso de uso.
func NewMovementHistoryUseCase(repo repository.MovementRepository) *MovementHistoryUseCase {
	return &MovementHistoryUseCase{repo: repo}
}

// List devuelve movimientos de la empresa, más recientes primero. Con ItemID filtra por ítem;
// el historial de un ítem borrado sigue disponible.
func (uc *MovementHistoryUseCase) List(ctx context.Context, companyID string, q dto.MovementListQuery) (*dto.MovementListResponse, error) {
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return nil, domain.NewValidationError("from", "debe ser anterior a to")
	}
	q.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, repository.MovementFilter{
		ItemID: q.ItemID,
		From:   q.From,
		To:     q.To,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.NewMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}
