package dto

import "github.com/jhoicas/fieldops-api/internal/domain/entity"

// NewItemResponse convierte la entidad en su representación de salida.
func NewItemResponse(it *entity.Item) ItemResponse {
	return ItemResponse{
		ID:           it.ID,
		CompanyID:    it.CompanyID,
		CategoryID:   it.CategoryID,
		SKU:          it.SKU,
		Name:         it.Name,
		Description:  it.Description,
		UnitPrice:    it.UnitPrice,
		CostPrice:    it.CostPrice,
		Quantity:     it.Quantity,
		MinQuantity:  it.MinQuantity,
		Status:       it.Status,
		Discontinued: it.Discontinued,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

// NewMovementResponse convierte un movimiento en su representación de salida.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Notes:     m.Notes,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}

// NewCategoryResponse convierte una categoría en su representación de salida.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
