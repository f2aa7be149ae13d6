package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ItemID   string `json:"item_id"`
	Type     string `json:"type"` // in, out, adjust
	Quantity int64  `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Notes     string    `json:"notes,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterMovementResponse resultado de registrar un movimiento: el movimiento y el
// estado del ítem tras aplicarlo.
type RegisterMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	Item     ItemResponse     `json:"item"`
}

// MovementListQuery filtros del historial de movimientos.
type MovementListQuery struct {
	PageRequest
	ItemID string     `query:"item_id"`
	From   *time.Time `query:"-"`
	To     *time.Time `query:"-"`
}

// MovementListResponse lista paginada de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// InventorySummaryDTO respuesta de GET /api/inventory/summary.
type InventorySummaryDTO struct {
	TotalItems        int             `json:"total_items"`
	LowStockItems     int             `json:"low_stock_items"`
	ActiveItems       int             `json:"active_items"`
	DiscontinuedItems int             `json:"discontinued_items"`
	TotalValue        decimal.Decimal `json:"total_value"` // Σ cost_price × quantity
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un ítem en stock bajo.
type ReplenishmentSuggestionDTO struct {
	ItemID             string          `json:"item_id"`
	SKU                string          `json:"sku,omitempty"`
	ItemName           string          `json:"item_name"`
	CurrentQuantity    int64           `json:"current_quantity"`
	MinQuantity        int64           `json:"min_quantity"`
	IdealQuantity      int64           `json:"ideal_quantity"`      // ceil(MinQuantity * 1.5)
	SuggestedOrderQty  int64           `json:"suggested_order_qty"` // IdealQuantity - CurrentQuantity
	CostPrice          decimal.Decimal `json:"cost_price"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * CostPrice
	Priority           int             `json:"priority"`             // 1 = más urgente
}
