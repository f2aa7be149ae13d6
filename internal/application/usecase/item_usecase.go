package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	domaininv "github.com/jhoicas/fieldops-api/internal/domain/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

const (
	maxNameLength = 200
	maxSKULength  = 100
)

// ItemUseCase casos de uso CRUD del catálogo. Quantity solo cambia vía movimientos;
// Status se recalcula en cada escritura que toque umbral o descontinuado.
type ItemUseCase struct {
	repo       repository.ItemRepository
	categories repository.CategoryRepository
	txRunner   inventory.TxRunner
	retry      inventory.RetryPolicy
	log        zerolog.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	repo repository.ItemRepository,
	categories repository.CategoryRepository,
	txRunner inventory.TxRunner,
	retry inventory.RetryPolicy,
	log zerolog.Logger,
) *ItemUseCase {
	return &ItemUseCase{
		repo:       repo,
		categories: categories,
		txRunner:   txRunner,
		retry:      retry,
		log:        log,
	}
}

// Create crea un ítem con su cantidad inicial y el estado derivado de ella.
func (uc *ItemUseCase) Create(ctx context.Context, companyID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if companyID == "" {
		return nil, domain.NewValidationError("company_id", "es requerido")
	}
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	if err := validateName(in.Name); err != nil {
		return nil, err
	}
	if err := validateSKU(in.SKU); err != nil {
		return nil, err
	}
	if err := validateMoney("unit_price", in.UnitPrice); err != nil {
		return nil, err
	}
	if err := validateMoney("cost_price", in.CostPrice); err != nil {
		return nil, err
	}
	if in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "no puede ser negativa")
	}
	if in.MinQuantity < 0 {
		return nil, domain.NewValidationError("min_quantity", "no puede ser negativa")
	}
	if err := uc.checkCategory(ctx, companyID, in.CategoryID); err != nil {
		return nil, err
	}
	if err := uc.checkSKUAvailable(ctx, companyID, in.SKU, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &entity.Item{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		CategoryID:   in.CategoryID,
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		UnitPrice:    in.UnitPrice,
		CostPrice:    in.CostPrice,
		Quantity:     in.Quantity,
		MinQuantity:  in.MinQuantity,
		Discontinued: in.Discontinued,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	domaininv.Reclassify(item)
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	out := dto.NewItemResponse(item)
	return &out, nil
}

// GetByID obtiene un ítem de la empresa. domain.ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewItemResponse(item)
	return &out, nil
}

// List lista ítems por empresa con filtros opcionales y paginación.
func (uc *ItemUseCase) List(ctx context.Context, companyID string, q dto.ItemListQuery) (*dto.ItemListResponse, error) {
	switch q.Status {
	case "", entity.ItemStatusActive, entity.ItemStatusLowStock, entity.ItemStatusDiscontinued:
	default:
		return nil, domain.NewValidationError("status", "debe ser active, low_stock o discontinued")
	}
	q.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, repository.ItemFilter{
		Status:     q.Status,
		CategoryID: q.CategoryID,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.NewItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

// Update aplica un parche parcial. Se ejecuta con la fila bloqueada para que el estado se
// derive de la misma cantidad que ve el motor de movimientos.
func (uc *ItemUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity != nil {
		return nil, domain.NewValidationError("quantity", "no es editable; registre un movimiento in, out o adjust")
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		in.Name = &name
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if err := validateSKU(sku); err != nil {
			return nil, err
		}
		if err := uc.checkSKUAvailable(ctx, companyID, sku, id); err != nil {
			return nil, err
		}
		in.SKU = &sku
	}
	if in.UnitPrice != nil {
		if err := validateMoney("unit_price", *in.UnitPrice); err != nil {
			return nil, err
		}
	}
	if in.CostPrice != nil {
		if err := validateMoney("cost_price", *in.CostPrice); err != nil {
			return nil, err
		}
	}
	if in.MinQuantity != nil && *in.MinQuantity < 0 {
		return nil, domain.NewValidationError("min_quantity", "no puede ser negativa")
	}
	if in.CategoryID != nil {
		categoryID := strings.TrimSpace(*in.CategoryID)
		if err := uc.checkCategory(ctx, companyID, categoryID); err != nil {
			return nil, err
		}
		in.CategoryID = &categoryID
	}

	var updated *entity.Item
	err := inventory.RunWithRetry(ctx, uc.txRunner, uc.retry, uc.log, "actualizar ítem", func(
		itemRepo repository.ItemRepository,
		_ repository.MovementRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, companyID, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		applyItemPatch(item, in)
		domaininv.Reclassify(item)
		item.UpdatedAt = time.Now().UTC()
		if err := itemRepo.Update(ctx, item, item.Version); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewItemResponse(updated)
	return &out, nil
}

// Delete elimina el ítem sin revisar historial ni referencias externas.
// Los movimientos existentes se conservan.
func (uc *ItemUseCase) Delete(ctx context.Context, companyID, id string) error {
	deleted, err := uc.repo.Delete(ctx, companyID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func applyItemPatch(item *entity.Item, in dto.UpdateItemRequest) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.SKU != nil {
		item.SKU = *in.SKU
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.CostPrice != nil {
		item.CostPrice = *in.CostPrice
	}
	if in.MinQuantity != nil {
		item.MinQuantity = *in.MinQuantity
	}
	if in.Discontinued != nil {
		item.Discontinued = *in.Discontinued
	}
}

func (uc *ItemUseCase) checkCategory(ctx context.Context, companyID, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	cat, err := uc.categories.GetByID(ctx, companyID, categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	return nil
}

// checkSKUAvailable devuelve ErrDuplicate si otro ítem de la empresa ya usa el SKU.
func (uc *ItemUseCase) checkSKUAvailable(ctx context.Context, companyID, sku, selfID string) error {
	if sku == "" {
		return nil
	}
	existing, err := uc.repo.GetByCompanyAndSKU(ctx, companyID, sku)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrDuplicate
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return domain.NewValidationError("name", "es requerido")
	}
	if len(name) > maxNameLength {
		return domain.NewValidationError("name", "máximo 200 caracteres")
	}
	return nil
}

func validateSKU(sku string) error {
	if len(sku) > maxSKULength {
		return domain.NewValidationError("sku", "máximo 100 caracteres")
	}
	return nil
}

func validateMoney(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.NewValidationError(field, "no puede ser negativo")
	}
	return nil
}
