package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo suscripciones sobre PostgreSQL. company_id es UNIQUE.
type SubscriptionRepo struct {
	q Querier
}

func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

const subscriptionColumns = `id, company_id, plan, start_date, end_date, active`

func (r *SubscriptionRepo) GetByID(ctx context.Context, id string) (*entity.Subscription, error) {
	return r.getOne(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = $1`, id)
}

func (r *SubscriptionRepo) GetByCompany(ctx context.Context, companyID string) (*entity.Subscription, error) {
	return r.getOne(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE company_id = $1`, companyID)
}

func (r *SubscriptionRepo) getOne(ctx context.Context, sql, arg string) (*entity.Subscription, error) {
	s, err := scanSubscription(r.q.QueryRow(ctx, sql, arg))
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get subscription", err)
	}
	return s, nil
}

func (r *SubscriptionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Subscription, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+subscriptionColumns+` FROM subscriptions
		ORDER BY start_date DESC, id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr("list subscriptions", err)
	}
	defer rows.Close()

	var list []*entity.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Upsert reemplaza la suscripción existente de la empresa conservando su id.
func (r *SubscriptionRepo) Upsert(ctx context.Context, s *entity.Subscription) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO subscriptions (id, company_id, plan, start_date, end_date, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id) DO UPDATE
		SET plan = EXCLUDED.plan, start_date = EXCLUDED.start_date,
		    end_date = EXCLUDED.end_date, active = EXCLUDED.active
		RETURNING id::text`,
		s.ID, s.CompanyID, s.Plan, s.StartDate, s.EndDate, s.Active,
	).Scan(&s.ID)
	return writeErr("upsert subscription", err)
}

func scanSubscription(row pgx.Row) (*entity.Subscription, error) {
	var s entity.Subscription
	if err := row.Scan(&s.ID, &s.CompanyID, &s.Plan, &s.StartDate, &s.EndDate, &s.Active); err != nil {
		return nil, err
	}
	return &s, nil
}
