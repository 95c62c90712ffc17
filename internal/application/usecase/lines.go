package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

// priceOf precio por defecto de una línea cuando el request no lo trae.
type priceOf func(p *entity.Product) decimal.Decimal

func salePrice(p *entity.Product) decimal.Decimal     { return p.Price }
func purchasePrice(p *entity.Product) decimal.Decimal { return p.Cost }

// buildItems arma las líneas verificando que cada producto sea de companyID.
// Un producto vacío se deja pasar para que lo reporte la validación.
func buildItems(ctx context.Context, products repository.ProductRepository, companyID string, in []dto.LineItemRequest, def priceOf) ([]entity.LineItem, error) {
	out := make([]entity.LineItem, 0, len(in))
	for _, r := range in {
		it := entity.LineItem{ID: uuid.New().String(), ProductID: r.ProductID, Quantity: r.Quantity}
		if r.Price != nil {
			it.Price = *r.Price
		}
		if r.ProductID != "" {
			prod, err := products.GetByID(ctx, companyID, r.ProductID)
			if err != nil {
				return nil, err
			}
			if prod == nil {
				return nil, domain.ErrNotFound
			}
			if r.Price == nil {
				it.Price = def(prod)
			}
		}
		out = append(out, it)
	}
	return out, nil
}

// lockOrder productos distintos de items, ordenados. Ventas y compras bloquean
// inventario en este orden.
func lockOrder(items []entity.LineItem) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" || seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true
		ids = append(ids, it.ProductID)
	}
	sort.Strings(ids)
	return ids
}

// quantities cantidad total por producto.
func quantities(items []entity.LineItem) map[string]int {
	out := make(map[string]int, len(items))
	for _, it := range items {
		out[it.ProductID] += it.Quantity
	}
	return out
}

// totalOr total informado o, si viene vacío, Σ cantidad × precio.
func totalOr(total *decimal.Decimal, items []entity.LineItem) decimal.Decimal {
	if total != nil {
		return *total
	}
	return entity.SumItems(items)
}

// branchIn obtiene la sucursal visible para scope.
func branchIn(ctx context.Context, branches repository.BranchRepository, scope, id string) (*entity.Branch, error) {
	b, err := branches.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}
