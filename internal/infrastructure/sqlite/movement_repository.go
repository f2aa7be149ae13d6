package sqlite

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

type movementRow struct {
	ID        string `db:"id"`
	CompanyID string `db:"company_id"`
	ItemID    string `db:"item_id"`
	Type      string `db:"type"`
	Quantity  int64  `db:"quantity"`
	Notes     string `db:"notes"`
	CreatedBy string `db:"created_by"`
	CreatedAt int64  `db:"created_at"`
}

// MovementRepo libro de movimientos sobre SQLite. Solo inserta y lista.
type MovementRepo struct {
	q sqlx.ExtContext
}

// NewMovementRepository construye el adaptador.
func NewMovementRepository(q sqlx.ExtContext) *MovementRepo {
	return &MovementRepo{q: q}
}

func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	_, err := sqlx.NamedExecContext(ctx, r.q, `
		INSERT INTO inventory_movements (id, company_id, item_id, type, quantity, notes, created_by, created_at)
		VALUES (:id, :company_id, :item_id, :type, :quantity, :notes, :created_by, :created_at)`,
		movementRow{
			ID:        m.ID,
			CompanyID: m.CompanyID,
			ItemID:    m.ItemID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Notes:     m.Notes,
			CreatedBy: m.CreatedBy,
			CreatedAt: toNanos(m.CreatedAt),
		})
	if err != nil {
		return classify("insert movement", err)
	}
	return nil
}

// ListByCompany ordena por created_at descendente; rowid desempata inserciones con la misma marca.
func (r *MovementRepo) ListByCompany(ctx context.Context, companyID string, filter repository.MovementFilter) ([]*entity.Movement, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, company_id, item_id, type, quantity, notes, created_by, created_at
		FROM inventory_movements WHERE company_id = ?`)
	args := []any{companyID}
	if filter.ItemID != "" {
		sb.WriteString(" AND item_id = ?")
		args = append(args, filter.ItemID)
	}
	if filter.From != nil {
		sb.WriteString(" AND created_at >= ?")
		args = append(args, toNanos(*filter.From))
	}
	if filter.To != nil {
		sb.WriteString(" AND created_at <= ?")
		args = append(args, toNanos(*filter.To))
	}
	sb.WriteString(" ORDER BY created_at DESC, rowid DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, filter.Limit, filter.Offset)
	}

	var rows []movementRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, sb.String(), args...); err != nil {
		return nil, classify("list movements", err)
	}
	list := make([]*entity.Movement, 0, len(rows))
	for _, row := range rows {
		list = append(list, &entity.Movement{
			ID:        row.ID,
			CompanyID: row.CompanyID,
			ItemID:    row.ItemID,
			Type:      row.Type,
			Quantity:  row.Quantity,
			Notes:     row.Notes,
			CreatedBy: row.CreatedBy,
			CreatedAt: fromNanos(row.CreatedAt),
		})
	}
	return list, nil
}
