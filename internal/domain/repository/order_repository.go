package repository

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// OrderRepository pedidos de clientes.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Order, error)
	// GetForUpdate bloquea la orden para cambiar su estado.
	GetForUpdate(ctx context.Context, companyID, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Order, error)
	Delete(ctx context.Context, companyID, id string) error
}
