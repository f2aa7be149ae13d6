package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El nombre es único por empresa.
func (uc *CategoryUseCase) Create(ctx context.Context, companyID string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if companyID == "" {
		return nil, domain.NewValidationError("company_id", "es requerido")
	}
	name := strings.TrimSpace(in.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCompanyAndName(ctx, companyID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	cat := &entity.Category{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(cat)
	return &out, nil
}

// FindOrCreate devuelve la categoría con ese nombre, creándola si no existe (importación).
func (uc *CategoryUseCase) FindOrCreate(ctx context.Context, companyID, name string) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByCompanyAndName(ctx, companyID, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		out := dto.NewCategoryResponse(existing)
		return &out, nil
	}
	return uc.Create(ctx, companyID, dto.CategoryRequest{Name: name})
}

// GetByID obtiene una categoría de la empresa.
func (uc *CategoryUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCategoryResponse(cat)
	return &out, nil
}

// List lista categorías por empresa con paginación.
func (uc *CategoryUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.NewCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update reemplaza nombre y descripción.
func (uc *CategoryUseCase) Update(ctx context.Context, companyID, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	cat, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if name != cat.Name {
		other, err := uc.repo.GetByCompanyAndName(ctx, companyID, name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
	}
	cat.Name = name
	cat.Description = in.Description
	cat.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(cat)
	return &out, nil
}

// Delete borra la categoría; sus ítems quedan sin categoría (no se borran).
func (uc *CategoryUseCase) Delete(ctx context.Context, companyID, id string) error {
	deleted, err := uc.repo.Delete(ctx, companyID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
