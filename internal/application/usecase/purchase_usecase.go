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

// PurchaseUseCase compras a proveedores. Registrar una compra suma las cantidades al inventario
// de la sucursal. Las compras no se modifican ni eliminan.
type PurchaseUseCase struct {
	d Deps
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(d Deps) *PurchaseUseCase {
	return &PurchaseUseCase{d: d.withDefaults()}
}

// Create registra cabecera, líneas y entrada de stock en una sola transacción.
func (uc *PurchaseUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(in.Date, uc.d.today())
	if err != nil {
		return nil, domain.NewValidationError("date", "Fecha inválida.")
	}
	var out *entity.Purchase
	err = uc.d.Tx.Run(ctx, func(tx ports.Repos) error {
		b, err := branchIn(ctx, tx.Branches, scope, in.BranchID)
		if err != nil {
			return err
		}
		sup, err := tx.Suppliers.GetByID(ctx, b.CompanyID, in.SupplierID)
		if err != nil {
			return err
		}
		if sup == nil {
			return domain.ErrNotFound
		}
		items, err := buildItems(ctx, tx.Products, b.CompanyID, in.Items, purchasePrice)
		if err != nil {
			return err
		}
		pur := &entity.Purchase{
			ID:         uuid.New().String(),
			BranchID:   b.ID,
			SupplierID: sup.ID,
			Date:       date,
			Items:      items,
			Total:      totalOr(in.Total, items),
		}
		if err := uc.d.check("purchase", validation.Purchase(pur, uc.d.now())); err != nil {
			return err
		}
		if err := tx.Purchases.Create(ctx, pur); err != nil {
			return err
		}
		qty := quantities(items)
		for _, productID := range lockOrder(items) {
			if err := tx.Inventory.AddStock(ctx, uuid.New().String(), b.ID, productID, qty[productID]); err != nil {
				return err
			}
		}
		out = pur
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.d.Log.Info().Str("purchase_id", out.ID).Str("branch_id", out.BranchID).Int("items", len(out.Items)).Msg("compra registrada")
	return toPurchaseResponse(out), nil
}

func (uc *PurchaseUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.PurchaseResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	pur, err := uc.d.Repos.Purchases.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if pur == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseResponse(pur), nil
}

func (uc *PurchaseUseCase) List(ctx context.Context, p entity.Principal, page dto.PageRequest) (*dto.PurchaseListResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	list, err := uc.d.Repos.Purchases.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, pur := range list {
		items = append(items, *toPurchaseResponse(pur))
	}
	return &dto.PurchaseListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}
