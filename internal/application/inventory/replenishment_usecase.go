package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición de ítems en stock bajo.
type ReplenishmentUseCase struct {
	itemRepo repository.ItemRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(itemRepo repository.ItemRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{itemRepo: itemRepo}
}

// GenerateReplenishmentList devuelve los ítems con estado low_stock (los descontinuados no se
// reponen) con la cantidad sugerida de pedido, ordenados por déficit y luego por nombre.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, companyID string) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.itemRepo.ListByCompany(ctx, companyID, repository.ItemFilter{Status: entity.ItemStatusLowStock})
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(items))
	for _, it := range items {
		ideal := idealQuantity(it.MinQuantity)
		suggested := ideal - it.Quantity
		if suggested < 0 {
			suggested = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ItemID:             it.ID,
			SKU:                it.SKU,
			ItemName:           it.Name,
			CurrentQuantity:    it.Quantity,
			MinQuantity:        it.MinQuantity,
			IdealQuantity:      ideal,
			SuggestedOrderQty:  suggested,
			CostPrice:          it.CostPrice,
			EstimatedOrderCost: it.CostPrice.Mul(decimal.NewFromInt(suggested)).Round(2),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := a.MinQuantity - a.CurrentQuantity
		defB := b.MinQuantity - b.CurrentQuantity
		if defA != defB {
			return defA > defB
		}
		return a.ItemName < b.ItemName
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

// idealQuantity = ceil(min * 1.5), siempre por encima del umbral para salir de low_stock.
func idealQuantity(minQuantity int64) int64 {
	ideal := (minQuantity*3 + 1) / 2
	if ideal <= minQuantity {
		ideal = minQuantity + 1
	}
	return ideal
}
