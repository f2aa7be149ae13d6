package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row rowScanner) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO categories (id, company_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.CompanyID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return classify("insert category", err)
	}
	return nil
}

func (r *CategoryRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(op, err)
	}
	return c, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Category, error) {
	return r.getOne(ctx, "get category", `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM categories WHERE company_id = $1 AND id = $2`, companyID, id)
}

func (r *CategoryRepo) GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Category, error) {
	return r.getOne(ctx, "get category by name", `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM categories WHERE company_id = $1 AND name = $2`, companyID, name)
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx, `
		UPDATE categories SET name = $3, description = $4, updated_at = $5
		WHERE company_id = $1 AND id = $2`,
		c.CompanyID, c.ID, c.Name, c.Description, c.UpdatedAt)
	if err != nil {
		return classify("update category", err)
	}
	return nil
}

func (r *CategoryRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM categories WHERE company_id = $1 ORDER BY name ASC, id ASC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, classify("list categories", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, classify("scan category", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list categories", err)
	}
	return list, nil
}

// Delete borra la categoría; el FK ON DELETE SET NULL desasocia sus ítems.
func (r *CategoryRepo) Delete(ctx context.Context, companyID, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return false, classify("delete category", err)
	}
	return cmd.RowsAffected() > 0, nil
}
