package repository

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// PurchaseRepository cabecera y líneas de compras. La empresa se resuelve por la sucursal.
type PurchaseRepository interface {
	// Create inserta cabecera y líneas; debe ejecutarse dentro de una transacción.
	Create(ctx context.Context, p *entity.Purchase) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Purchase, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Purchase, error)
}
