package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, rut, address, created_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO companies (id, name, rut, address, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.RUT, c.Address, c.CreatedAt,
	)
	return writeErr("insert company", err)
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	row := r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	c, err := scanCompany(row)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get company", err)
	}
	return c, nil
}

// Update actualiza nombre, RUT y dirección.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE companies SET name = $2, rut = $3, address = $4
		WHERE id = $1`,
		c.ID, c.Name, c.RUT, c.Address,
	)
	if err != nil {
		return writeErr("update company", err)
	}
	return affected(tag)
}

// List lista empresas paginadas, más recientes primero.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+companyColumns+` FROM companies
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr("list companies", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina la empresa y, en cascada, todo lo que cuelga de ella.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return deleteErr("delete company", err)
	}
	return affected(tag)
}

// LockForUpdate toma el bloqueo de fila de la empresa hasta el fin de la transacción.
func (r *CompanyRepo) LockForUpdate(ctx context.Context, id string) error {
	var locked string
	err := r.q.QueryRow(ctx, `SELECT id::text FROM companies WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if missing(err) {
			return domain.ErrNotFound
		}
		return readErr("lock company", err)
	}
	return nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.ID, &c.Name, &c.RUT, &c.Address, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
