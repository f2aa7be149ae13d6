package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados operativos de un ítem (derivados, ver inventory.Classify).
const (
	ItemStatusActive       = "active"
	ItemStatusLowStock     = "low_stock"
	ItemStatusDiscontinued = "discontinued"
)

// Item representa un bien en stock de una empresa (tenant).
// Quantity solo la modifica el motor de movimientos; Status se persiste como caché
// desnormalizada y se recalcula en cada escritura que cambie sus entradas.
type Item struct {
	ID           string
	CompanyID    string
	CategoryID   string // vacío = sin categoría
	SKU          string // opcional, único por empresa si está presente
	Name         string
	Description  string
	UnitPrice    decimal.Decimal // precio de venta
	CostPrice    decimal.Decimal // costo unitario (valoración del inventario)
	Quantity     int64
	MinQuantity  int64 // umbral de stock bajo
	Status       string
	Discontinued bool
	Version      int64 // control de concurrencia optimista
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockValue devuelve cost_price × quantity.
func (i *Item) StockValue() decimal.Decimal {
	return i.CostPrice.Mul(decimal.NewFromInt(i.Quantity))
}
