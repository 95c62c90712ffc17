package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo compras (cabecera + purchase_items).
type PurchaseRepo struct {
	q Querier
}

func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `pu.id, pu.branch_id, pu.supplier_id, pu.total, pu.date`

func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO purchases (id, branch_id, supplier_id, total, date)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.BranchID, p.SupplierID, p.Total, p.Date,
	)
	if err != nil {
		return writeErr("insert purchase", err)
	}
	return purchaseLines.insert(ctx, r.q, p.ID, p.Items)
}

func (r *PurchaseRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Purchase, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+purchaseColumns+`
		FROM purchases pu JOIN branches b ON b.id = pu.branch_id
		WHERE pu.id = $2 AND ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	p, err := scanPurchase(row)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get purchase", err)
	}
	items, err := purchaseLines.load(ctx, r.q, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Items = items[p.ID]
	return p, nil
}

func (r *PurchaseRepo) List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+purchaseColumns+`
		FROM purchases pu JOIN branches b ON b.id = pu.branch_id
		WHERE ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid)
		ORDER BY pu.date DESC, pu.id
		LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, readErr("list purchases", err)
	}
	var (
		list []*entity.Purchase
		ids  []string
	)
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
		ids = append(ids, p.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := purchaseLines.load(ctx, r.q, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.Items = items[p.ID]
	}
	return list, nil
}

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	if err := row.Scan(&p.ID, &p.BranchID, &p.SupplierID, &p.Total, &p.Date); err != nil {
		return nil, err
	}
	return &p, nil
}
