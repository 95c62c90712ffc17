package ports

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// ReceiptLine línea de boleta con el nombre del producto resuelto.
type ReceiptLine struct {
	entity.LineItem
	SKU         string
	ProductName string
}

// Receipt datos necesarios para imprimir la boleta de una venta.
type Receipt struct {
	Sale    *entity.Sale
	Company *entity.Company
	Branch  *entity.Branch
	Seller  string
	Lines   []ReceiptLine
}

// ReceiptRenderer genera el documento (PDF) de una boleta.
type ReceiptRenderer interface {
	RenderReceipt(ctx context.Context, r Receipt) ([]byte, error)
}
