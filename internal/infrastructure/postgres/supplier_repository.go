package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, company_id, name, rut, contact`

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO suppliers (id, company_id, name, rut, contact)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.CompanyID, s.Name, s.RUT, s.Contact,
	)
	return writeErr("insert supplier", err)
}

func (r *SupplierRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Supplier, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+supplierColumns+` FROM suppliers
		WHERE id = $2 AND ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	s, err := scanSupplier(row)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get supplier", err)
	}
	return s, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	tag, err := r.q.Exec(ctx, `UPDATE suppliers SET name = $2, rut = $3, contact = $4 WHERE id = $1`,
		s.ID, s.Name, s.RUT, s.Contact)
	if err != nil {
		return writeErr("update supplier", err)
	}
	return affected(tag)
}

// Delete con compras asociadas devuelve domain.ErrProtected.
func (r *SupplierRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM suppliers
		WHERE id = $2 AND ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	if err != nil {
		return deleteErr("delete supplier", err)
	}
	return affected(tag)
}

func (r *SupplierRepo) List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+supplierColumns+` FROM suppliers
		WHERE ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)
		ORDER BY name, id
		LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, readErr("list suppliers", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.CompanyID, &s.Name, &s.RUT, &s.Contact); err != nil {
		return nil, err
	}
	return &s, nil
}
