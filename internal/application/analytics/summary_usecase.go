package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/domain/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

// SummaryUseCase agrega el inventario de una empresa en el momento de la consulta.
// Los valores nunca se almacenan; siempre se derivan del catálogo actual.
type SummaryUseCase struct {
	itemRepo repository.ItemRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(itemRepo repository.ItemRepository) *SummaryUseCase {
	return &SummaryUseCase{itemRepo: itemRepo}
}

// GetSummary devuelve conteos por estado y el valor total (Σ costo × cantidad) redondeado a 2 decimales.
func (uc *SummaryUseCase) GetSummary(ctx context.Context, companyID string) (*dto.InventorySummaryDTO, error) {
	items, err := uc.itemRepo.ListByCompany(ctx, companyID, repository.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("resumen: listar ítems: %w", err)
	}
	s := inventory.Summarize(items)
	return &dto.InventorySummaryDTO{
		TotalItems:        s.TotalItems,
		LowStockItems:     s.LowStockItems,
		ActiveItems:       s.ActiveItems,
		DiscontinuedItems: s.DiscontinuedItems,
		TotalValue:        s.TotalValue.Round(2),
	}, nil
}
