package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de cliente.
const (
	OrderPendiente = "pendiente"
	OrderEnviado   = "enviado"
	OrderEntregado = "entregado"
	OrderCancelado = "cancelado"
)

// OrderStatuses estados válidos en orden de avance.
var OrderStatuses = []string{OrderPendiente, OrderEnviado, OrderEntregado, OrderCancelado}

// Order pedido de un cliente final (e-commerce) hacia una empresa.
type Order struct {
	ID            string
	CompanyID     string
	CustomerName  string
	CustomerEmail string
	Status        string
	Total         decimal.Decimal
	CreatedAt     time.Time
	Items         []LineItem
}

// CanTransition informa si la orden puede pasar de su estado actual a next.
// El avance es pendiente → enviado → entregado; cancelado desde cualquier estado no terminal.
func (o Order) CanTransition(next string) bool {
	switch o.Status {
	case OrderPendiente:
		return next == OrderEnviado || next == OrderCancelado
	case OrderEnviado:
		return next == OrderEntregado || next == OrderCancelado
	default:
		return false
	}
}
