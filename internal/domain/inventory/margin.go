// Package inventory reglas de dominio para reposición y márgenes.
package inventory

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// IdealStock stock objetivo al reponer: 1,5 veces el punto de reposición, redondeado hacia arriba.
func IdealStock(reorderPoint int) int {
	return (reorderPoint*3 + 1) / 2
}

// SuggestedQty unidades a pedir para llegar al stock ideal. Nunca negativo.
func SuggestedQty(stock, reorderPoint int) int {
	if q := IdealStock(reorderPoint) - stock; q > 0 {
		return q
	}
	return 0
}

// MarginPct margen bruto porcentual: (ingreso - costo) / ingreso × 100, con 2 decimales.
// Ingreso cero o negativo → 0.
func MarginPct(revenue, cost decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return revenue.Sub(cost).Div(revenue).Mul(hundred).Round(2)
}
