package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo órdenes de clientes (cabecera + order_items).
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, company_id, customer_name, customer_email, status, total, created_at`

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, company_id, customer_name, customer_email, status, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, o.CompanyID, o.CustomerName, o.CustomerEmail, o.Status, o.Total, o.CreatedAt,
	)
	if err != nil {
		return writeErr("insert order", err)
	}
	return orderLines.insert(ctx, r.q, o.ID, o.Items)
}

func (r *OrderRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Order, error) {
	return r.get(ctx, companyID, id, "")
}

func (r *OrderRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Order, error) {
	return r.get(ctx, companyID, id, " FOR UPDATE")
}

func (r *OrderRepo) get(ctx context.Context, companyID, id, lock string) (*entity.Order, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE id = $2 AND ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)`+lock, companyID, id)
	o, err := scanOrder(row)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get order", err)
	}
	items, err := orderLines.load(ctx, r.q, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return o, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return writeErr("update order status", err)
	}
	return affected(tag)
}

func (r *OrderRepo) List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, readErr("list orders", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}

	ids := make([]string, len(list))
	for i, o := range list {
		ids[i] = o.ID
	}
	items, err := orderLines.load(ctx, r.q, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = items[o.ID]
	}
	return list, nil
}

// Delete borra la orden y sus líneas (cascada).
func (r *OrderRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM orders
		WHERE id = $2 AND ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	if err != nil {
		return deleteErr("delete order", err)
	}
	return affected(tag)
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.CompanyID, &o.CustomerName, &o.CustomerEmail, &o.Status, &o.Total, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
