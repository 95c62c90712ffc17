package repository

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// ProductRepository persistencia de productos. companyID vacío = catálogo completo.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	// Delete devuelve domain.ErrProtected si hay líneas de compra, venta u orden que lo referencian.
	Delete(ctx context.Context, companyID, id string) error
	List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error)
}
