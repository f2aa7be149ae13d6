package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn     = "in"     // entrada
	MovementTypeOut    = "out"    // salida
	MovementTypeAdjust = "adjust" // ajuste absoluto (fija la cantidad)
)

// Movement es un hecho inmutable: N unidades del ítem X con tipo T en el instante t.
// Quantity es la magnitud solicitada (siempre positiva), no un delta con signo.
type Movement struct {
	ID        string
	CompanyID string
	ItemID    string
	Type      string
	Quantity  int64
	Notes     string
	CreatedBy string // UserID, vacío si el origen no es un usuario (importación)
	CreatedAt time.Time
}

// IsValidMovementType indica si t es uno de in, out o adjust.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjust:
		return true
	}
	return false
}
