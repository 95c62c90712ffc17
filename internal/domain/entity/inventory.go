package entity

import "github.com/shopspring/decimal"

// Inventory existencias de un producto en una sucursal. Par (BranchID, ProductID) único.
type Inventory struct {
	ID           string
	BranchID     string
	ProductID    string
	Stock        int
	ReorderPoint int
}

// BelowReorderPoint informa si el stock cayó bajo el punto de reposición.
func (i Inventory) BelowReorderPoint() bool {
	return i.Stock < i.ReorderPoint
}

// LowStockItem fila del reporte de reposición (inventario + datos del producto y la sucursal).
type LowStockItem struct {
	Inventory
	SKU         string
	ProductName string
	BranchName  string
	Price       decimal.Decimal
	Cost        decimal.Decimal
}

// Missing unidades necesarias para volver al punto de reposición.
func (l LowStockItem) Missing() int {
	if l.Stock >= l.ReorderPoint {
		return 0
	}
	return l.ReorderPoint - l.Stock
}
