package entity

import "github.com/shopspring/decimal"

// Product artículo del catálogo de una empresa.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // formato AAA-0000
	Name        string
	Description string
	Price       decimal.Decimal // pesos chilenos, sin decimales
	Cost        decimal.Decimal
	Category    string
}
