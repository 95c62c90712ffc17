package repository

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// BranchRepository persistencia de sucursales. companyID vacío = sin filtro de empresa.
type BranchRepository interface {
	Create(ctx context.Context, b *entity.Branch) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Branch, error)
	Update(ctx context.Context, b *entity.Branch) error
	Delete(ctx context.Context, companyID, id string) error
	List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Branch, error)
	// CountByCompany cuenta las sucursales de la empresa, sin contar excludeID (vacío = ninguna).
	CountByCompany(ctx context.Context, companyID, excludeID string) (int, error)
}
