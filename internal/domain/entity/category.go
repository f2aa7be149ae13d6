package entity

import "time"

// Category agrupa ítems del catálogo. Borrar una categoría deja sus ítems sin categoría.
type Category struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
