package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// company_id es NULL para usuarios sin empresa; en Go se representa con "".
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, password_hash, rut, role, COALESCE(company_id::text, ''), is_active, created_at`

// Create persiste un nuevo usuario. Un username repetido devuelve domain.ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, rut, role, company_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.RUT, u.Role, u.CompanyID, u.IsActive, u.CreatedAt,
	)
	return writeErr("insert user", err)
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username (login).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepo) getOne(ctx context.Context, sql, arg string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, sql, arg))
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get user", err)
	}
	return u, nil
}

// Update reescribe todos los campos editables, incluido el hash.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE users SET username = $2, email = $3, password_hash = $4, rut = $5, role = $6,
		       company_id = NULLIF($7, '')::uuid, is_active = $8
		WHERE id = $1`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.RUT, u.Role, u.CompanyID, u.IsActive,
	)
	if err != nil {
		return writeErr("update user", err)
	}
	return affected(tag)
}

// Delete elimina el usuario. Con ventas registradas devuelve domain.ErrProtected.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return deleteErr("delete user", err)
	}
	return affected(tag)
}

// List lista usuarios según el filtro, ordenados por username.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)
		  AND ($2::text = '' OR id = NULLIF($2::text, '')::uuid)
		ORDER BY username
		LIMIT $3 OFFSET $4`,
		f.CompanyID, f.UserID, limit, offset)
	if err != nil {
		return nil, readErr("list users", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RUT, &u.Role,
		&u.CompanyID, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
