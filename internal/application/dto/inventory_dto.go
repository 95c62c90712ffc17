package dto

import "github.com/shopspring/decimal"

// InventoryRequest alta o modificación de existencias.
type InventoryRequest struct {
	BranchID     string `json:"branch" validate:"required"`
	ProductID    string `json:"product" validate:"required"`
	Stock        int    `json:"stock"`
	ReorderPoint int    `json:"reorder_point"`
}

// InventoryResponse salida de una fila de inventario.
type InventoryResponse struct {
	ID           string `json:"id"`
	BranchID     string `json:"branch"`
	ProductID    string `json:"product"`
	Stock        int    `json:"stock"`
	ReorderPoint int    `json:"reorder_point"`
}

// InventoryListResponse lista paginada de inventario.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// ReplenishmentSuggestion producto bajo punto de reposición con la cantidad sugerida.
type ReplenishmentSuggestion struct {
	InventoryID    string          `json:"inventory_id"`
	BranchID       string          `json:"branch"`
	BranchName     string          `json:"branch_name"`
	ProductID      string          `json:"product"`
	SKU            string          `json:"sku"`
	ProductName    string          `json:"product_name"`
	Stock          int             `json:"stock"`
	ReorderPoint   int             `json:"reorder_point"`
	SuggestedQty   int             `json:"suggested_qty"`
	UnitsSold30d   int             `json:"units_sold_30d"`
	GrossMarginPct decimal.Decimal `json:"gross_margin_pct"`
	Priority       int             `json:"priority"`
}
