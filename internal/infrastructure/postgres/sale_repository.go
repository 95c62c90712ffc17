package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas (cabecera + sale_items).
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `s.id, s.branch_id, s.user_id, s.total, s.created_at`

// Create inserta cabecera y líneas. Debe correr en la misma tx que descuenta el stock.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, branch_id, user_id, total, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.BranchID, s.UserID, s.Total, s.CreatedAt,
	)
	if err != nil {
		return writeErr("insert sale", err)
	}
	return saleLines.insert(ctx, r.q, s.ID, s.Items)
}

func (r *SaleRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Sale, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+saleColumns+`
		FROM sales s JOIN branches b ON b.id = s.branch_id
		WHERE s.id = $2 AND ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	s, err := scanSale(row)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get sale", err)
	}
	items, err := saleLines.load(ctx, r.q, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]
	return s, nil
}

func (r *SaleRepo) List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales s JOIN branches b ON b.id = s.branch_id
		WHERE ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid)
		ORDER BY s.created_at DESC, s.id
		LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, readErr("list sales", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan sale: %w", err)
	}

	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	items, err := saleLines.load(ctx, r.q, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Items = items[s.ID]
	}
	return list, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	if err := row.Scan(&s.ID, &s.BranchID, &s.UserID, &s.Total, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
