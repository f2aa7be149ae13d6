package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

type categoryRow struct {
	ID          string `db:"id"`
	CompanyID   string `db:"company_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	CreatedAt   int64  `db:"created_at"`
	UpdatedAt   int64  `db:"updated_at"`
}

func (r categoryRow) toEntity() *entity.Category {
	return &entity.Category{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   fromNanos(r.CreatedAt),
		UpdatedAt:   fromNanos(r.UpdatedAt),
	}
}

const selectCategory = `SELECT id, company_id, name, description, created_at, updated_at FROM categories`

// CategoryRepo implementación del puerto CategoryRepository sobre SQLite.
type CategoryRepo struct {
	q sqlx.ExtContext
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q sqlx.ExtContext) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := sqlx.NamedExecContext(ctx, r.q, `
		INSERT INTO categories (id, company_id, name, description, created_at, updated_at)
		VALUES (:id, :company_id, :name, :description, :created_at, :updated_at)`,
		categoryRow{
			ID:          c.ID,
			CompanyID:   c.CompanyID,
			Name:        c.Name,
			Description: c.Description,
			CreatedAt:   toNanos(c.CreatedAt),
			UpdatedAt:   toNanos(c.UpdatedAt),
		})
	if err != nil {
		return classify("insert category", err)
	}
	return nil
}

func (r *CategoryRepo) getOne(ctx context.Context, op, where string, args ...any) (*entity.Category, error) {
	var row categoryRow
	if err := sqlx.GetContext(ctx, r.q, &row, selectCategory+" WHERE "+where, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(op, err)
	}
	return row.toEntity(), nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Category, error) {
	return r.getOne(ctx, "get category", "company_id = ? AND id = ?", companyID, id)
}

func (r *CategoryRepo) GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Category, error) {
	return r.getOne(ctx, "get category by name", "company_id = ? AND name = ?", companyID, name)
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE company_id = ? AND id = ?`,
		c.Name, c.Description, toNanos(c.UpdatedAt), c.CompanyID, c.ID)
	if err != nil {
		return classify("update category", err)
	}
	return nil
}

func (r *CategoryRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Category, error) {
	var rows []categoryRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		selectCategory+" WHERE company_id = ? ORDER BY name ASC, id ASC LIMIT ? OFFSET ?",
		companyID, limit, offset)
	if err != nil {
		return nil, classify("list categories", err)
	}
	list := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// Delete borra la categoría; ON DELETE SET NULL desasocia sus ítems (requiere foreign_keys=ON).
func (r *CategoryRepo) Delete(ctx context.Context, companyID, id string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM categories WHERE company_id = ? AND id = ?`, companyID, id)
	if err != nil {
		return false, classify("delete category", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, classify("delete category", err)
	}
	return n > 0, nil
}
