package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta en una sucursal; UserID es el vendedor que la registró.
type Sale struct {
	ID        string
	BranchID  string
	UserID    string
	Total     decimal.Decimal
	CreatedAt time.Time
	Items     []LineItem
}
