package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// ProductUseCase catálogo de productos. La lectura es pública.
type ProductUseCase struct {
	d Deps
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(d Deps) *ProductUseCase {
	return &ProductUseCase{d: d.withDefaults()}
}

// catalogScope sin token o sin empresa se ve el catálogo completo; con empresa, solo el propio.
func catalogScope(p entity.Principal) string {
	if p.Anonymous() || p.IsSuperAdmin() {
		return ""
	}
	return p.CompanyID
}

// Create crea un producto en la empresa del principal.
func (uc *ProductUseCase) Create(ctx context.Context, p entity.Principal, in dto.ProductRequest) (*dto.ProductResponse, error) {
	companyID, err := writeCompany(p, in.CompanyID)
	if err != nil {
		return nil, err
	}
	prod := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Cost:        in.Cost,
		Category:    in.Category,
	}
	if err := uc.d.check("product", validation.Product(prod, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Products.Create(ctx, prod); err != nil {
		return nil, err
	}
	return toProductResponse(prod), nil
}

// Get obtiene un producto visible para el principal.
func (uc *ProductUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.ProductResponse, error) {
	prod, err := uc.d.Repos.Products.GetByID(ctx, catalogScope(p), id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(prod), nil
}

// List lista productos visibles para el principal.
func (uc *ProductUseCase) List(ctx context.Context, p entity.Principal, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.Normalize()
	list, err := uc.d.Repos.Products.List(ctx, catalogScope(p), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, prod := range list {
		items = append(items, *toProductResponse(prod))
	}
	return &dto.ProductListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Update reemplaza los datos del producto (la empresa no cambia).
func (uc *ProductUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	prod, err := uc.d.Repos.Products.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	prod.SKU = in.SKU
	prod.Name = in.Name
	prod.Description = in.Description
	prod.Price = in.Price
	prod.Cost = in.Cost
	prod.Category = in.Category
	if err := uc.d.check("product", validation.Product(prod, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Products.Update(ctx, prod); err != nil {
		return nil, err
	}
	return toProductResponse(prod), nil
}

// Delete elimina el producto. domain.ErrProtected si alguna línea lo referencia.
func (uc *ProductUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	scope, err := readScope(p)
	if err != nil {
		return err
	}
	return uc.d.Repos.Products.Delete(ctx, scope, id)
}
