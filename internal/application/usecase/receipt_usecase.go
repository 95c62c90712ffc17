package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Temucosoft-api/internal/application/ports"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// ReceiptUseCase boleta PDF de una venta.
type ReceiptUseCase struct {
	d        Deps
	sales    *SaleUseCase
	renderer ports.ReceiptRenderer
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(d Deps, renderer ports.ReceiptRenderer) *ReceiptUseCase {
	d = d.withDefaults()
	return &ReceiptUseCase{d: d, sales: NewSaleUseCase(d), renderer: renderer}
}

// Render devuelve el PDF de la venta id, visible para el principal.
func (uc *ReceiptUseCase) Render(ctx context.Context, p entity.Principal, id string) ([]byte, error) {
	s, err := uc.sales.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	b, err := uc.d.Repos.Branches.GetByID(ctx, "", s.BranchID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	c, err := uc.d.Repos.Companies.GetByID(ctx, b.CompanyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	r := ports.Receipt{Sale: s, Company: c, Branch: b, Lines: make([]ports.ReceiptLine, 0, len(s.Items))}
	if u, err := uc.d.Repos.Users.GetByID(ctx, s.UserID); err == nil && u != nil {
		r.Seller = u.Username
	}
	for _, it := range s.Items {
		line := ports.ReceiptLine{LineItem: it}
		prod, err := uc.d.Repos.Products.GetByID(ctx, b.CompanyID, it.ProductID)
		if err != nil {
			return nil, err
		}
		if prod != nil {
			line.SKU = prod.SKU
			line.ProductName = prod.Name
		}
		r.Lines = append(r.Lines, line)
	}
	doc, err := uc.renderer.RenderReceipt(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("boleta %s: %w", s.ID, err)
	}
	return doc, nil
}
