package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// InventoryUseCase existencias por sucursal. La empresa se deriva de la sucursal.
type InventoryUseCase struct {
	d Deps
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(d Deps) *InventoryUseCase {
	return &InventoryUseCase{d: d.withDefaults()}
}

// refs verifica que sucursal y producto existan, sean visibles y pertenezcan a la misma empresa.
func (uc *InventoryUseCase) refs(ctx context.Context, scope, branchID, productID string) error {
	b, err := uc.d.Repos.Branches.GetByID(ctx, scope, branchID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	prod, err := uc.d.Repos.Products.GetByID(ctx, b.CompanyID, productID)
	if err != nil {
		return err
	}
	if prod == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Create alta de existencias. El par sucursal/producto es único (domain.ErrDuplicate).
func (uc *InventoryUseCase) Create(ctx context.Context, p entity.Principal, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	inv := &entity.Inventory{
		ID:           uuid.New().String(),
		BranchID:     in.BranchID,
		ProductID:    in.ProductID,
		Stock:        in.Stock,
		ReorderPoint: in.ReorderPoint,
	}
	if err := uc.d.check("inventory", validation.Inventory(inv, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.refs(ctx, scope, in.BranchID, in.ProductID); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Inventory.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

func (uc *InventoryUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.InventoryResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	inv, err := uc.d.Repos.Inventory.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryResponse(inv), nil
}

// List existencias de la empresa; branchID opcional (?branch=).
func (uc *InventoryUseCase) List(ctx context.Context, p entity.Principal, branchID string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	list, err := uc.d.Repos.Inventory.List(ctx, repository.InventoryFilter{CompanyID: scope, BranchID: branchID}, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return &dto.InventoryListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Update ajusta stock y punto de reposición (sucursal y producto no cambian).
func (uc *InventoryUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	inv, err := uc.d.Repos.Inventory.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	inv.Stock = in.Stock
	inv.ReorderPoint = in.ReorderPoint
	if err := uc.d.check("inventory", validation.Inventory(inv, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Inventory.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

func (uc *InventoryUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	scope, err := readScope(p)
	if err != nil {
		return err
	}
	return uc.d.Repos.Inventory.Delete(ctx, scope, id)
}
