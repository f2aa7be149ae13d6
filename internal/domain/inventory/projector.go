package inventory

import (
	"fmt"
	"math"

	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
)

// CandidateQuantity calcula la cantidad resultante de aplicar un movimiento sobre current.
//
//	in:     current + quantity
//	out:    current - quantity
//	adjust: quantity (valor absoluto, no relativo)
//
// Una entrada que desbordaría int64 es error de validación.
// Si el resultado sería negativo (solo posible con out) devuelve *domain.InsufficientStockError.
// No persiste nada: el caller decide si confirma el candidato.
func CandidateQuantity(itemID string, current int64, movementType string, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, domain.NewValidationError("quantity", "debe ser un entero positivo")
	}
	var candidate int64
	switch movementType {
	case entity.MovementTypeIn:
		if quantity > math.MaxInt64-current {
			return 0, domain.NewValidationError("quantity", "la entrada excede la cantidad máxima representable")
		}
		candidate = current + quantity
	case entity.MovementTypeOut:
		candidate = current - quantity
	case entity.MovementTypeAdjust:
		candidate = quantity
	default:
		return 0, domain.NewValidationError("type", fmt.Sprintf("tipo de movimiento desconocido %q", movementType))
	}
	if candidate < 0 {
		return 0, &domain.InsufficientStockError{ItemID: itemID, Available: current, Requested: quantity}
	}
	return candidate, nil
}
