package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fieldops-api/internal/domain/entity"
)

// Summary es el modelo de lectura del dashboard. Nunca se persiste.
type Summary struct {
	TotalItems        int
	LowStockItems     int
	ActiveItems       int
	DiscontinuedItems int
	TotalValue        decimal.Decimal // Σ cost_price × quantity sobre todos los ítems
}

// Summarize recorre los ítems y acumula conteos por estado y la valoración total.
// La valoración incluye ítems de cualquier estado.
func Summarize(items []*entity.Item) Summary {
	s := Summary{TotalValue: decimal.Zero}
	for _, it := range items {
		s.TotalItems++
		switch it.Status {
		case entity.ItemStatusLowStock:
			s.LowStockItems++
		case entity.ItemStatusActive:
			s.ActiveItems++
		case entity.ItemStatusDiscontinued:
			s.DiscontinuedItems++
		}
		s.TotalValue = s.TotalValue.Add(it.StockValue())
	}
	return s
}
