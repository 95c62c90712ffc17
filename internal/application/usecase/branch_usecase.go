package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/application/ports"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// BranchUseCase sucursales con el límite del plan aplicado en cada escritura.
type BranchUseCase struct {
	d Deps
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(d Deps) *BranchUseCase {
	return &BranchUseCase{d: d.withDefaults()}
}

// Create crea la sucursal si el plan de la empresa lo permite. Conteo e insert corren en la
// misma transacción, con la empresa bloqueada.
func (uc *BranchUseCase) Create(ctx context.Context, p entity.Principal, in dto.BranchRequest) (*dto.BranchResponse, error) {
	companyID, err := writeCompany(p, in.CompanyID)
	if err != nil {
		return nil, err
	}
	b := &entity.Branch{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
	}
	if err := uc.d.check("branch", validation.Branch(b, uc.d.now())); err != nil {
		return nil, err
	}
	err = uc.d.Tx.Run(ctx, func(tx ports.Repos) error {
		if err := uc.d.Enforcer.EnforceBranchQuota(ctx, tx, companyID, ""); err != nil {
			return err
		}
		return tx.Branches.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	uc.d.Log.Info().Str("company_id", companyID).Str("branch_id", b.ID).Msg("sucursal creada")
	return toBranchResponse(b), nil
}

// Update modifica nombre y dirección. Vuelve a aplicar la cuota excluyendo la propia sucursal,
// así una empresa que bajó de plan no puede seguir editando sucursales sobre el límite.
func (uc *BranchUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.BranchRequest) (*dto.BranchResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	var out *entity.Branch
	err = uc.d.Tx.Run(ctx, func(tx ports.Repos) error {
		b, err := tx.Branches.GetByID(ctx, scope, id)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		b.Name = in.Name
		b.Address = in.Address
		if err := uc.d.check("branch", validation.Branch(b, uc.d.now())); err != nil {
			return err
		}
		if err := uc.d.Enforcer.EnforceBranchQuota(ctx, tx, b.CompanyID, b.ID); err != nil {
			return err
		}
		out = b
		return tx.Branches.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return toBranchResponse(out), nil
}

// Get obtiene una sucursal de la empresa del principal.
func (uc *BranchUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.BranchResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	b, err := uc.d.Repos.Branches.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(b), nil
}

// List sucursales de la empresa del principal (todas para super_admin).
func (uc *BranchUseCase) List(ctx context.Context, p entity.Principal, page dto.PageRequest) (*dto.BranchListResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	list, err := uc.d.Repos.Branches.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete elimina la sucursal y en cascada su inventario, compras y ventas.
func (uc *BranchUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	scope, err := readScope(p)
	if err != nil {
		return err
	}
	return uc.d.Repos.Branches.Delete(ctx, scope, id)
}
