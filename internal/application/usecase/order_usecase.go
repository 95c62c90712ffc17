package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/application/ports"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// OrderUseCase pedidos de clientes hacia una empresa.
type OrderUseCase struct {
	d Deps
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(d Deps) *OrderUseCase {
	return &OrderUseCase{d: d.withDefaults()}
}

// Create registra la orden con estado pendiente salvo que se indique otro.
func (uc *OrderUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	companyID, err := writeCompany(p, in.CompanyID)
	if err != nil {
		return nil, err
	}
	o := &entity.Order{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Status:        in.Status,
		CreatedAt:     uc.d.now(),
	}
	if o.Status == "" {
		o.Status = entity.OrderPendiente
	}
	if in.CreatedAt != nil {
		o.CreatedAt = *in.CreatedAt
	}
	err = uc.d.Tx.Run(ctx, func(tx ports.Repos) error {
		items, err := buildItems(ctx, tx.Products, companyID, in.Items, salePrice)
		if err != nil {
			return err
		}
		o.Items = items
		o.Total = totalOr(in.Total, items)
		if err := uc.d.check("order", validation.Order(o, uc.d.now())); err != nil {
			return err
		}
		return tx.Orders.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// UpdateStatus avanza el estado: pendiente → enviado → entregado, o cancelado.
// Una transición no permitida devuelve domain.ErrConflict.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, p entity.Principal, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	if v := validation.OrderStatus("status", in.Status); v != nil {
		return nil, uc.d.check("order", []validation.Violation{*v})
	}
	var out *entity.Order
	err = uc.d.Tx.Run(ctx, func(tx ports.Repos) error {
		o, err := tx.Orders.GetForUpdate(ctx, scope, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if !o.CanTransition(in.Status) {
			return domain.ErrConflict
		}
		if err := tx.Orders.UpdateStatus(ctx, o.ID, in.Status); err != nil {
			return err
		}
		o.Status = in.Status
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.d.Log.Info().Str("order_id", out.ID).Str("status", out.Status).Msg("estado de orden actualizado")
	return toOrderResponse(out), nil
}

func (uc *OrderUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.OrderResponse, error) {
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	o, err := uc.d.Repos.Orders.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(o), nil
}

// List sin autenticación devuelve una lista vacía en vez de 401.
func (uc *OrderUseCase) List(ctx context.Context, p entity.Principal, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.Normalize()
	resp := &dto.OrderListResponse{Items: []dto.OrderResponse{}, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}
	if p.Anonymous() {
		return resp, nil
	}
	scope, err := readScope(p)
	if err != nil {
		return nil, err
	}
	list, err := uc.d.Repos.Orders.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		resp.Items = append(resp.Items, *toOrderResponse(o))
	}
	return resp, nil
}

func (uc *OrderUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	scope, err := readScope(p)
	if err != nil {
		return err
	}
	return uc.d.Repos.Orders.Delete(ctx, scope, id)
}
