package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra a proveedor recibida en una sucursal.
// Date es una fecha de calendario (se guarda como DATE).
type Purchase struct {
	ID         string
	BranchID   string
	SupplierID string
	Total      decimal.Decimal
	Date       time.Time
	Items      []LineItem
}

// LineItem línea de detalle compartida por compras, ventas y órdenes.
type LineItem struct {
	ID        string
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// Subtotal cantidad × precio.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SumItems total de un conjunto de líneas.
func SumItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
