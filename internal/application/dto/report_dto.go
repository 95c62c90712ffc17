package dto

import "github.com/shopspring/decimal"

// ReportRange rango de fechas de un reporte (2006-01-02). Vacío = últimos 30 días.
type ReportRange struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// BranchSalesResponse ventas de una sucursal.
type BranchSalesResponse struct {
	BranchID   string          `json:"branch"`
	BranchName string          `json:"branch_name"`
	SalesCount int             `json:"sales_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// SalesSummaryResponse resumen de ventas (plan Estándar o superior).
type SalesSummaryResponse struct {
	From          string                `json:"from"`
	To            string                `json:"to"`
	SalesCount    int                   `json:"sales_count"`
	Units         int                   `json:"units"`
	Revenue       decimal.Decimal       `json:"revenue"`
	AverageTicket decimal.Decimal       `json:"average_ticket"`
	ByBranch      []BranchSalesResponse `json:"by_branch"`
}

// TopProductResponse producto más vendido (plan Premium).
type TopProductResponse struct {
	ProductID      string          `json:"product"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Units          int             `json:"units"`
	Revenue        decimal.Decimal `json:"revenue"`
	Margin         decimal.Decimal `json:"margin"`
	GrossMarginPct decimal.Decimal `json:"gross_margin_pct"`
}
