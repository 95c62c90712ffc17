package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo sucursales sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

const branchColumns = `id, company_id, name, address`

func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO branches (id, company_id, name, address)
		VALUES ($1, $2, $3, $4)`,
		b.ID, b.CompanyID, b.Name, b.Address,
	)
	return writeErr("insert branch", err)
}

func (r *BranchRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Branch, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+branchColumns+` FROM branches
		WHERE id = $2 AND ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	b, err := scanBranch(row)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get branch", err)
	}
	return b, nil
}

// Update no cambia la empresa dueña.
func (r *BranchRepo) Update(ctx context.Context, b *entity.Branch) error {
	tag, err := r.q.Exec(ctx, `UPDATE branches SET name = $2, address = $3 WHERE id = $1`,
		b.ID, b.Name, b.Address)
	if err != nil {
		return writeErr("update branch", err)
	}
	return affected(tag)
}

func (r *BranchRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM branches
		WHERE id = $2 AND ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	if err != nil {
		return deleteErr("delete branch", err)
	}
	return affected(tag)
}

func (r *BranchRepo) List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Branch, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+branchColumns+` FROM branches
		WHERE ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)
		ORDER BY name, id
		LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, readErr("list branches", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// CountByCompany se llama con la fila de la empresa bloqueada, así el conteo no cambia
// hasta el commit.
func (r *BranchRepo) CountByCompany(ctx context.Context, companyID, excludeID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM branches
		WHERE company_id = $1 AND ($2::text = '' OR id <> NULLIF($2::text, '')::uuid)`,
		companyID, excludeID).Scan(&n)
	if err != nil {
		return 0, readErr("count branches", err)
	}
	return n, nil
}

func scanBranch(row pgx.Row) (*entity.Branch, error) {
	var b entity.Branch
	if err := row.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address); err != nil {
		return nil, err
	}
	return &b, nil
}
