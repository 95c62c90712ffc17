// Package inventory reporte de reposición sobre el inventario por sucursal.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/inventory"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

// historyDays ventana de ventas usada para priorizar.
const historyDays = 30

// maxHistoryProducts tope de productos con historial considerados.
const maxHistoryProducts = 500

// ReplenishmentUseCase lista el inventario bajo punto de reposición con la cantidad sugerida,
// priorizado por margen y volumen de ventas recientes.
type ReplenishmentUseCase struct {
	inventory repository.InventoryRepository
	reports   repository.ReportRepository
	now       func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso.
func NewReplenishmentUseCase(inv repository.InventoryRepository, reports repository.ReportRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{inventory: inv, reports: reports, now: time.Now}
}

// LowStock companyID vacío = todas las empresas; branchID opcional.
func (uc *ReplenishmentUseCase) LowStock(ctx context.Context, companyID, branchID string) ([]dto.ReplenishmentSuggestion, error) {
	var (
		rows    []*entity.LowStockItem
		history []entity.TopProduct
	)
	end := uc.now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = uc.inventory.ListLowStock(gctx, repository.InventoryFilter{CompanyID: companyID, BranchID: branchID})
		if err != nil {
			return fmt.Errorf("reposición: inventario: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		history, err = uc.reports.TopProducts(gctx, companyID, end.AddDate(0, 0, -historyDays), end, maxHistoryProducts)
		if err != nil {
			return fmt.Errorf("reposición: historial: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prioritize(rows, history), nil
}

func prioritize(rows []*entity.LowStockItem, history []entity.TopProduct) []dto.ReplenishmentSuggestion {
	byProduct := make(map[string]entity.TopProduct, len(history))
	for _, h := range history {
		byProduct[h.ProductID] = h
	}

	out := make([]dto.ReplenishmentSuggestion, 0, len(rows))
	for _, r := range rows {
		s := dto.ReplenishmentSuggestion{
			InventoryID:  r.ID,
			BranchID:     r.BranchID,
			BranchName:   r.BranchName,
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			ProductName:  r.ProductName,
			Stock:        r.Stock,
			ReorderPoint: r.ReorderPoint,
			SuggestedQty: inventory.SuggestedQty(r.Stock, r.ReorderPoint),
		}
		if h, ok := byProduct[r.ProductID]; ok {
			s.UnitsSold30d = h.Units
			s.GrossMarginPct = inventory.MarginPct(h.Revenue, h.Revenue.Sub(h.Margin))
		} else {
			// Sin ventas recientes: margen de lista
			s.GrossMarginPct = inventory.MarginPct(r.Price, r.Cost)
		}
		out = append(out, s)
	}

	// Mayor margen, luego más vendido, luego mayor déficit.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.GrossMarginPct.Equal(b.GrossMarginPct) {
			return a.GrossMarginPct.GreaterThan(b.GrossMarginPct)
		}
		if a.UnitsSold30d != b.UnitsSold30d {
			return a.UnitsSold30d > b.UnitsSold30d
		}
		return a.ReorderPoint-a.Stock > b.ReorderPoint-b.Stock
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}
