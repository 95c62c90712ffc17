package repository

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// SaleRepository cabecera y líneas de ventas. La empresa se resuelve por la sucursal.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Sale, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Sale, error)
}
