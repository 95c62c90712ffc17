package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// CompanyUseCase administración de empresas (solo super_admin).
type CompanyUseCase struct {
	d Deps
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(d Deps) *CompanyUseCase {
	return &CompanyUseCase{d: d.withDefaults()}
}

// Create crea una nueva empresa.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		RUT:       in.RUT,
		Address:   in.Address,
		CreatedAt: uc.d.Now(),
	}
	if err := uc.d.check("company", validation.Company(company, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.d.Repos.Companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.Normalize()
	list, err := uc.d.Repos.Companies.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Update modifica los campos enviados.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.d.Repos.Companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.RUT != nil {
		company.RUT = *in.RUT
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if err := uc.d.check("company", validation.Company(company, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina la empresa y en cascada todo lo que cuelga de ella.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	return uc.d.Repos.Companies.Delete(ctx, id)
}
