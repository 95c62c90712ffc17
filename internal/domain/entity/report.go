package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary resumen de ventas de una empresa en un rango de fechas.
type SalesSummary struct {
	From       time.Time
	To         time.Time
	SalesCount int
	Units      int
	Revenue    decimal.Decimal
	ByBranch   []BranchSales
}

// BranchSales ventas agregadas de una sucursal.
type BranchSales struct {
	BranchID   string
	BranchName string
	SalesCount int
	Revenue    decimal.Decimal
}

// TopProduct producto ordenado por unidades vendidas.
type TopProduct struct {
	ProductID string
	SKU       string
	Name      string
	Units     int
	Revenue   decimal.Decimal
	Margin    decimal.Decimal // ingresos - costo × unidades
}
