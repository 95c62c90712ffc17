package repository

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Get* devuelve (nil, nil) si no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	Delete(ctx context.Context, id string) error
	// LockForUpdate bloquea la fila de la empresa hasta el fin de la transacción
	// (SELECT ... FOR UPDATE). Serializa las operaciones sujetas a cuota por empresa.
	// Devuelve domain.ErrNotFound si la empresa no existe.
	LockForUpdate(ctx context.Context, id string) error
}
