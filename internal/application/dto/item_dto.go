package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem del catálogo.
// Quantity es la cantidad inicial; después solo cambia vía movimientos.
type CreateItemRequest struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	CategoryID   string          `json:"category_id"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Quantity     int64           `json:"quantity"`
	MinQuantity  int64           `json:"min_quantity"`
	Discontinued bool            `json:"discontinued"`
}

// UpdateItemRequest parche parcial de un ítem. CategoryID = "" quita la categoría.
// Quantity solo existe para rechazarla: la cantidad cambia únicamente vía movimientos.
type UpdateItemRequest struct {
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	CategoryID   *string          `json:"category_id"`
	Description  *string          `json:"description"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	MinQuantity  *int64           `json:"min_quantity"`
	Discontinued *bool            `json:"discontinued"`
	Quantity     *int64           `json:"quantity"`
}

// ItemListQuery filtros del listado de ítems.
type ItemListQuery struct {
	PageRequest
	Status     string `query:"status"`
	CategoryID string `query:"category_id"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	CategoryID   string          `json:"category_id,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Quantity     int64           `json:"quantity"`
	MinQuantity  int64           `json:"min_quantity"`
	Status       string          `json:"status"`
	Discontinued bool            `json:"discontinued"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
