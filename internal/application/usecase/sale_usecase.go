package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/application/ports"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// SaleUseCase ventas en sucursal. Descuenta stock de las filas de inventario existentes.
type SaleUseCase struct {
	d Deps
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(d Deps) *SaleUseCase {
	return &SaleUseCase{d: d.withDefaults()}
}

// Create registra la venta a nombre de quien hace la petición.
func (uc *SaleUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	createdAt := uc.d.now()
	if in.CreatedAt != nil {
		createdAt = *in.CreatedAt
	}
	var out *entity.Sale
	err = uc.d.Tx.Run(ctx, func(tx ports.Repos) error {
		b, err := branchIn(ctx, tx.Branches, scope, in.BranchID)
		if err != nil {
			return err
		}
		items, err := buildItems(ctx, tx.Products, b.CompanyID, in.Items, salePrice)
		if err != nil {
			return err
		}
		s := &entity.Sale{
			ID:        uuid.New().String(),
			BranchID:  b.ID,
			UserID:    p.UserID,
			CreatedAt: createdAt,
			Items:     items,
			Total:     totalOr(in.Total, items),
		}
		if err := uc.d.check("sale", validation.Sale(s, uc.d.now())); err != nil {
			return err
		}
		rows, err := uc.reserve(ctx, tx, b.ID, items)
		if err != nil {
			return err
		}
		if err := tx.Sales.Create(ctx, s); err != nil {
			return err
		}
		for _, inv := range rows {
			if err := tx.Inventory.Update(ctx, inv); err != nil {
				return err
			}
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.d.Log.Info().Str("sale_id", out.ID).Str("branch_id", out.BranchID).Str("total", out.Total.String()).Msg("venta registrada")
	return toSaleResponse(out), nil
}

// reserve bloquea las filas de inventario de la sucursal y descuenta las cantidades en memoria.
// Los bloqueos se toman en el orden de lockOrder, no en el de las líneas.
// Productos sin fila de inventario no se controlan. Stock negativo → error de validación en la línea.
func (uc *SaleUseCase) reserve(ctx context.Context, tx ports.Repos, branchID string, items []entity.LineItem) ([]*entity.Inventory, error) {
	rows := make(map[string]*entity.Inventory)
	var locked []*entity.Inventory
	for _, productID := range lockOrder(items) {
		inv, err := tx.Inventory.GetForUpdate(ctx, branchID, productID)
		if err != nil {
			return nil, err
		}
		if inv != nil {
			rows[productID] = inv
			locked = append(locked, inv)
		}
	}
	var vs []validation.Violation
	for i, it := range items {
		inv := rows[it.ProductID]
		if inv == nil {
			continue
		}
		inv.Stock -= it.Quantity
		if inv.Stock < 0 {
			vs = append(vs, validation.Violation{Field: fmt.Sprintf("items[%d].quantity", i), Message: validation.MsgNegativeStock})
		}
	}
	if err := uc.d.check("sale", vs); err != nil {
		return nil, err
	}
	return locked, nil
}

func (uc *SaleUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.SaleResponse, error) {
	s, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(s), nil
}

func (uc *SaleUseCase) load(ctx context.Context, p entity.Principal, id string) (*entity.Sale, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	s, err := uc.d.Repos.Sales.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (uc *SaleUseCase) List(ctx context.Context, p entity.Principal, page dto.PageRequest) (*dto.SaleListResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	list, err := uc.d.Repos.Sales.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}
