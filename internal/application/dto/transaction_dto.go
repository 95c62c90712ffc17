package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest línea de compra, venta u orden. Sin precio se usa el precio del producto.
type LineItemRequest struct {
	ProductID string           `json:"product" validate:"required"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

// LineItemResponse línea con subtotal.
type LineItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CreatePurchaseRequest compra a proveedor. Total omitido = Σ cantidad × precio.
type CreatePurchaseRequest struct {
	BranchID   string            `json:"branch" validate:"required"`
	SupplierID string            `json:"supplier" validate:"required"`
	Date       string            `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Total      *decimal.Decimal  `json:"total"`
	Items      []LineItemRequest `json:"items" validate:"dive"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID         string             `json:"id"`
	BranchID   string             `json:"branch"`
	SupplierID string             `json:"supplier"`
	Date       string             `json:"date"`
	Total      decimal.Decimal    `json:"total"`
	Items      []LineItemResponse `json:"items"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateSaleRequest venta en sucursal; el vendedor es quien hace la petición.
type CreateSaleRequest struct {
	BranchID  string            `json:"branch" validate:"required"`
	CreatedAt *time.Time        `json:"created_at"`
	Total     *decimal.Decimal  `json:"total"`
	Items     []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID        string             `json:"id"`
	BranchID  string             `json:"branch"`
	UserID    string             `json:"user"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []LineItemResponse `json:"items"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateOrderRequest pedido de cliente. CompanyID solo para super_admin.
type CreateOrderRequest struct {
	CompanyID     string            `json:"company_id"`
	CustomerName  string            `json:"customer_name" validate:"required,max=200"`
	CustomerEmail string            `json:"customer_email" validate:"omitempty,email"`
	Status        string            `json:"status"`
	CreatedAt     *time.Time        `json:"created_at"`
	Total         *decimal.Decimal  `json:"total"`
	Items         []LineItemRequest `json:"items" validate:"dive"`
}

// UpdateOrderStatusRequest cambio de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID            string             `json:"id"`
	CompanyID     string             `json:"company_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Status        string             `json:"status"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []LineItemResponse `json:"items"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
