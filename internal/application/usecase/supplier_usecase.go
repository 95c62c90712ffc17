package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// SupplierUseCase proveedores de la empresa.
type SupplierUseCase struct {
	d Deps
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(d Deps) *SupplierUseCase {
	return &SupplierUseCase{d: d.withDefaults()}
}

func (uc *SupplierUseCase) Create(ctx context.Context, p entity.Principal, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	companyID, err := writeCompany(p, in.CompanyID)
	if err != nil {
		return nil, err
	}
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		RUT:       in.RUT,
		Contact:   in.Contact,
	}
	if err := uc.d.check("supplier", validation.Supplier(s, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Suppliers.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

func (uc *SupplierUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.SupplierResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	s, err := uc.d.Repos.Suppliers.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(s), nil
}

func (uc *SupplierUseCase) List(ctx context.Context, p entity.Principal, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	list, err := uc.d.Repos.Suppliers.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	s, err := uc.d.Repos.Suppliers.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.RUT = in.RUT
	s.Contact = in.Contact
	if err := uc.d.check("supplier", validation.Supplier(s, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Suppliers.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Delete domain.ErrProtected si el proveedor tiene compras.
func (uc *SupplierUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	scope, err := readScope(p)
	if err != nil {
		return err
	}
	return uc.d.Repos.Suppliers.Delete(ctx, scope, id)
}
