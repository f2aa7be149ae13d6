package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL. Solo inserta y lista.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento; seq lo asigna la base de datos.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_movements (id, company_id, item_id, type, quantity, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.CompanyID, m.ItemID, m.Type, m.Quantity, m.Notes, m.CreatedBy, m.CreatedAt)
	if err != nil {
		return classify("insert movement", err)
	}
	return nil
}

// ListByCompany lista movimientos más recientes primero; seq desempata marcas de tiempo iguales.
func (r *MovementRepo) ListByCompany(ctx context.Context, companyID string, filter repository.MovementFilter) ([]*entity.Movement, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, company_id, item_id, type, quantity, notes, created_by, created_at
		FROM inventory_movements WHERE company_id = $1`)
	args := []any{companyID}
	if filter.ItemID != "" {
		args = append(args, filter.ItemID)
		fmt.Fprintf(&sb, " AND item_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		fmt.Fprintf(&sb, " AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		fmt.Fprintf(&sb, " AND created_at <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY created_at DESC, seq DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, classify("list movements", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ItemID, &m.Type, &m.Quantity, &m.Notes,
			&m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, classify("scan movement", err)
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list movements", err)
	}
	return list, nil
}
