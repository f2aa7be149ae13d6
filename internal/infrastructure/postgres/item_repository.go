package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, company_id, category_id, sku, name, description, unit_price, cost_price,
	quantity, min_quantity, status, discontinued, version, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func scanItem(row rowScanner) (*entity.Item, error) {
	var (
		it         entity.Item
		categoryID *string
		sku        *string
	)
	err := row.Scan(&it.ID, &it.CompanyID, &categoryID, &sku, &it.Name, &it.Description,
		&it.UnitPrice, &it.CostPrice, &it.Quantity, &it.MinQuantity, &it.Status,
		&it.Discontinued, &it.Version, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.CategoryID = derefString(categoryID)
	it.SKU = derefString(sku)
	return &it, nil
}

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.CompanyID, nullIfEmpty(item.CategoryID), nullIfEmpty(item.SKU), item.Name,
		item.Description, item.UnitPrice, item.CostPrice, item.Quantity, item.MinQuantity,
		item.Status, item.Discontinued, item.Version, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return classify("insert item", err)
	}
	return nil
}

func (r *ItemRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(op, err)
	}
	return it, nil
}

// GetByID obtiene un ítem de la empresa.
func (r *ItemRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Item, error) {
	return r.getOne(ctx, "get item",
		`SELECT `+itemColumns+` FROM items WHERE company_id = $1 AND id = $2`, companyID, id)
}

// GetForUpdate lee el ítem con SELECT ... FOR UPDATE; solo tiene sentido dentro de una tx.
func (r *ItemRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Item, error) {
	return r.getOne(ctx, "lock item",
		`SELECT `+itemColumns+` FROM items WHERE company_id = $1 AND id = $2 FOR UPDATE`, companyID, id)
}

// GetByCompanyAndSKU obtiene un ítem por empresa y SKU.
func (r *ItemRepo) GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Item, error) {
	return r.getOne(ctx, "get item by sku",
		`SELECT `+itemColumns+` FROM items WHERE company_id = $1 AND sku = $2`, companyID, sku)
}

// Update actualiza atributos de catálogo y estado. No toca quantity.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item, expectedVersion int64) error {
	query := `
		UPDATE items SET category_id = $3, sku = $4, name = $5, description = $6, unit_price = $7,
			cost_price = $8, min_quantity = $9, discontinued = $10, status = $11,
			version = version + 1, updated_at = $12
		WHERE company_id = $1 AND id = $2 AND version = $13`
	cmd, err := r.q.Exec(ctx, query,
		item.CompanyID, item.ID, nullIfEmpty(item.CategoryID), nullIfEmpty(item.SKU), item.Name,
		item.Description, item.UnitPrice, item.CostPrice, item.MinQuantity, item.Discontinued,
		item.Status, item.UpdatedAt, expectedVersion,
	)
	if err != nil {
		return classify("update item", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update item %s: %w", item.ID, domain.ErrConflict)
	}
	item.Version = expectedVersion + 1
	return nil
}

// UpdateStock escribe cantidad y estado (usado solo por el motor de movimientos).
func (r *ItemRepo) UpdateStock(ctx context.Context, item *entity.Item, expectedVersion int64) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE items SET quantity = $3, status = $4, version = version + 1, updated_at = $5
		WHERE company_id = $1 AND id = $2 AND version = $6`,
		item.CompanyID, item.ID, item.Quantity, item.Status, item.UpdatedAt, expectedVersion,
	)
	if err != nil {
		return classify("update item stock", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update item stock %s: %w", item.ID, domain.ErrConflict)
	}
	item.Version = expectedVersion + 1
	return nil
}

// ListByCompany lista ítems por empresa con filtros opcionales. Limit <= 0 devuelve todos.
func (r *ItemRepo) ListByCompany(ctx context.Context, companyID string, filter repository.ItemFilter) ([]*entity.Item, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + itemColumns + ` FROM items WHERE company_id = $1`)
	args := []any{companyID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		fmt.Fprintf(&sb, " AND category_id = $%d", len(args))
	}
	sb.WriteString(" ORDER BY name ASC, id ASC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, classify("list items", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, classify("scan item", err)
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list items", err)
	}
	return list, nil
}

// Delete elimina un ítem de la empresa. Los movimientos no se tocan.
func (r *ItemRepo) Delete(ctx context.Context, companyID, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM items WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return false, classify("delete item", err)
	}
	return cmd.RowsAffected() > 0, nil
}
