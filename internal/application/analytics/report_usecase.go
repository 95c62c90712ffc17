// Package analytics reportes de ventas por empresa. El acceso está condicionado por el plan
// (ver interfaces/http RequireFeature); aquí solo se calculan.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/inventory"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

const (
	defaultDays = 30
	defaultTopN = 10
	maxTopN     = 100
)

// ReportUseCase resumen de ventas y ranking de productos.
type ReportUseCase struct {
	reports repository.ReportRepository
	loc     *time.Location
	now     func() time.Time
}

// NewReportUseCase loc es la zona del negocio para interpretar las fechas del rango.
func NewReportUseCase(reports repository.ReportRepository, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportUseCase{reports: reports, loc: loc, now: time.Now}
}

// SalesSummary totales del rango y desglose por sucursal.
func (uc *ReportUseCase) SalesSummary(ctx context.Context, companyID string, rng dto.ReportRange) (*dto.SalesSummaryResponse, error) {
	from, to, err := uc.period(rng)
	if err != nil {
		return nil, err
	}
	s, err := uc.reports.SalesSummary(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("reportes: resumen de ventas: %w", err)
	}
	resp := &dto.SalesSummaryResponse{
		From:          from.Format(time.DateOnly),
		To:            to.AddDate(0, 0, -1).Format(time.DateOnly),
		SalesCount:    s.SalesCount,
		Units:         s.Units,
		Revenue:       s.Revenue,
		AverageTicket: decimal.Zero,
		ByBranch:      make([]dto.BranchSalesResponse, 0, len(s.ByBranch)),
	}
	if s.SalesCount > 0 {
		resp.AverageTicket = s.Revenue.Div(decimal.NewFromInt(int64(s.SalesCount))).Round(0)
	}
	for _, b := range s.ByBranch {
		resp.ByBranch = append(resp.ByBranch, dto.BranchSalesResponse{
			BranchID:   b.BranchID,
			BranchName: b.BranchName,
			SalesCount: b.SalesCount,
			Revenue:    b.Revenue,
		})
	}
	return resp, nil
}

// TopProducts productos más vendidos del rango con su margen bruto.
func (uc *ReportUseCase) TopProducts(ctx context.Context, companyID string, rng dto.ReportRange, limit int) ([]dto.TopProductResponse, error) {
	from, to, err := uc.period(rng)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopN
	}
	if limit > maxTopN {
		limit = maxTopN
	}
	rows, err := uc.reports.TopProducts(ctx, companyID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reportes: top productos: %w", err)
	}
	out := make([]dto.TopProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductResponse{
			ProductID:      r.ProductID,
			SKU:            r.SKU,
			Name:           r.Name,
			Units:          r.Units,
			Revenue:        r.Revenue,
			Margin:         r.Margin,
			GrossMarginPct: inventory.MarginPct(r.Revenue, r.Revenue.Sub(r.Margin)),
		})
	}
	return out, nil
}

// period convierte el rango de días (ambos inclusive) a [from, to) en la zona del negocio.
// Sin fechas: los últimos 30 días incluyendo hoy.
func (uc *ReportUseCase) period(rng dto.ReportRange) (time.Time, time.Time, error) {
	now := uc.now().In(uc.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)

	end := today
	if rng.To != "" {
		t, err := time.ParseInLocation(time.DateOnly, rng.To, uc.loc)
		if err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("to", "Fecha inválida.")
		}
		end = t
	}
	start := end.AddDate(0, 0, -(defaultDays - 1))
	if rng.From != "" {
		t, err := time.ParseInLocation(time.DateOnly, rng.From, uc.loc)
		if err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("from", "Fecha inválida.")
		}
		start = t
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.NewValidationError("to", validation.MsgDateRange)
	}
	return start, end.AddDate(0, 0, 1), nil
}
