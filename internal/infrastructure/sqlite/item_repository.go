package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// itemRow es la forma persistida del ítem; decimal.Decimal se guarda como TEXT.
type itemRow struct {
	ID           string          `db:"id"`
	CompanyID    string          `db:"company_id"`
	CategoryID   sql.NullString  `db:"category_id"`
	SKU          sql.NullString  `db:"sku"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	CostPrice    decimal.Decimal `db:"cost_price"`
	Quantity     int64           `db:"quantity"`
	MinQuantity  int64           `db:"min_quantity"`
	Status       string          `db:"status"`
	Discontinued bool            `db:"discontinued"`
	Version      int64           `db:"version"`
	CreatedAt    int64           `db:"created_at"`
	UpdatedAt    int64           `db:"updated_at"`
}

func newItemRow(it *entity.Item) itemRow {
	return itemRow{
		ID:           it.ID,
		CompanyID:    it.CompanyID,
		CategoryID:   nullString(it.CategoryID),
		SKU:          nullString(it.SKU),
		Name:         it.Name,
		Description:  it.Description,
		UnitPrice:    it.UnitPrice,
		CostPrice:    it.CostPrice,
		Quantity:     it.Quantity,
		MinQuantity:  it.MinQuantity,
		Status:       it.Status,
		Discontinued: it.Discontinued,
		Version:      it.Version,
		CreatedAt:    toNanos(it.CreatedAt),
		UpdatedAt:    toNanos(it.UpdatedAt),
	}
}

func (r itemRow) toEntity() *entity.Item {
	return &entity.Item{
		ID:           r.ID,
		CompanyID:    r.CompanyID,
		CategoryID:   r.CategoryID.String,
		SKU:          r.SKU.String,
		Name:         r.Name,
		Description:  r.Description,
		UnitPrice:    r.UnitPrice,
		CostPrice:    r.CostPrice,
		Quantity:     r.Quantity,
		MinQuantity:  r.MinQuantity,
		Status:       r.Status,
		Discontinued: r.Discontinued,
		Version:      r.Version,
		CreatedAt:    fromNanos(r.CreatedAt),
		UpdatedAt:    fromNanos(r.UpdatedAt),
	}
}

const selectItem = `SELECT id, company_id, category_id, sku, name, description, unit_price, cost_price,
	quantity, min_quantity, status, discontinued, version, created_at, updated_at FROM items`

// ItemRepo implementación del puerto ItemRepository sobre SQLite (usable con *sqlx.DB o *sqlx.Tx).
type ItemRepo struct {
	q sqlx.ExtContext
}

// NewItemRepository construye el adaptador.
func NewItemRepository(q sqlx.ExtContext) *ItemRepo {
	return &ItemRepo{q: q}
}

func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	_, err := sqlx.NamedExecContext(ctx, r.q, `
		INSERT INTO items (id, company_id, category_id, sku, name, description, unit_price, cost_price,
			quantity, min_quantity, status, discontinued, version, created_at, updated_at)
		VALUES (:id, :company_id, :category_id, :sku, :name, :description, :unit_price, :cost_price,
			:quantity, :min_quantity, :status, :discontinued, :version, :created_at, :updated_at)`,
		newItemRow(item))
	if err != nil {
		return classify("insert item", err)
	}
	return nil
}

func (r *ItemRepo) getOne(ctx context.Context, op, where string, args ...any) (*entity.Item, error) {
	var row itemRow
	if err := sqlx.GetContext(ctx, r.q, &row, selectItem+" WHERE "+where, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(op, err)
	}
	return row.toEntity(), nil
}

func (r *ItemRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Item, error) {
	return r.getOne(ctx, "get item", "company_id = ? AND id = ?", companyID, id)
}

// GetForUpdate equivale a GetByID: la conexión única ya serializa las transacciones.
func (r *ItemRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Item, error) {
	return r.getOne(ctx, "lock item", "company_id = ? AND id = ?", companyID, id)
}

func (r *ItemRepo) GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Item, error) {
	return r.getOne(ctx, "get item by sku", "company_id = ? AND sku = ?", companyID, sku)
}

func (r *ItemRepo) Update(ctx context.Context, item *entity.Item, expectedVersion int64) error {
	row := newItemRow(item)
	res, err := r.q.ExecContext(ctx, `
		UPDATE items SET category_id = ?, sku = ?, name = ?, description = ?, unit_price = ?,
			cost_price = ?, min_quantity = ?, discontinued = ?, status = ?,
			version = version + 1, updated_at = ?
		WHERE company_id = ? AND id = ? AND version = ?`,
		row.CategoryID, row.SKU, row.Name, row.Description, row.UnitPrice, row.CostPrice,
		row.MinQuantity, row.Discontinued, row.Status, row.UpdatedAt,
		row.CompanyID, row.ID, expectedVersion)
	if err != nil {
		return classify("update item", err)
	}
	return bumpVersion(res, item, expectedVersion, "update item")
}

func (r *ItemRepo) UpdateStock(ctx context.Context, item *entity.Item, expectedVersion int64) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE items SET quantity = ?, status = ?, version = version + 1, updated_at = ?
		WHERE company_id = ? AND id = ? AND version = ?`,
		item.Quantity, item.Status, toNanos(item.UpdatedAt), item.CompanyID, item.ID, expectedVersion)
	if err != nil {
		return classify("update item stock", err)
	}
	return bumpVersion(res, item, expectedVersion, "update item stock")
}

func bumpVersion(res sql.Result, item *entity.Item, expectedVersion int64, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", op, item.ID, domain.ErrConflict)
	}
	item.Version = expectedVersion + 1
	return nil
}

func (r *ItemRepo) ListByCompany(ctx context.Context, companyID string, filter repository.ItemFilter) ([]*entity.Item, error) {
	var sb strings.Builder
	sb.WriteString(selectItem + " WHERE company_id = ?")
	args := []any{companyID}
	if filter.Status != "" {
		sb.WriteString(" AND status = ?")
		args = append(args, filter.Status)
	}
	if filter.CategoryID != "" {
		sb.WriteString(" AND category_id = ?")
		args = append(args, filter.CategoryID)
	}
	sb.WriteString(" ORDER BY name ASC, id ASC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, filter.Limit, filter.Offset)
	}

	var rows []itemRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, sb.String(), args...); err != nil {
		return nil, classify("list items", err)
	}
	list := make([]*entity.Item, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

func (r *ItemRepo) Delete(ctx context.Context, companyID, id string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM items WHERE company_id = ? AND id = ?`, companyID, id)
	if err != nil {
		return false, classify("delete item", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, classify("delete item", err)
	}
	return n > 0, nil
}
