// Package inventory contiene los servicios de dominio del libro de stock: clasificación de
// estado, cálculo de la cantidad candidata y el resumen agregado del catálogo.
package inventory

import "github.com/jhoicas/fieldops-api/internal/domain/entity"

// Classify deriva el estado operativo de un ítem. Función pura; la primera regla que aplica gana:
//  1. discontinued si el ítem está marcado como descontinuado (sin importar la cantidad)
//  2. low_stock si quantity <= minQuantity
//  3. active en otro caso
func Classify(quantity, minQuantity int64, discontinued bool) string {
	if discontinued {
		return entity.ItemStatusDiscontinued
	}
	if quantity <= minQuantity {
		return entity.ItemStatusLowStock
	}
	return entity.ItemStatusActive
}

// Reclassify recalcula y asigna el estado del ítem a partir de sus campos actuales.
func Reclassify(item *entity.Item) {
	item.Status = Classify(item.Quantity, item.MinQuantity, item.Discontinued)
}
