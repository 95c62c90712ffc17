package repository

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// SupplierRepository persistencia de proveedores. companyID vacío = todos.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	// Delete devuelve domain.ErrProtected si tiene compras asociadas.
	Delete(ctx context.Context, companyID, id string) error
	List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Supplier, error)
}
