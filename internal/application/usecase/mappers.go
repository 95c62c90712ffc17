package usecase

import (
	"time"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
)

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{ID: c.ID, Name: c.Name, RUT: c.RUT, Address: c.Address, CreatedAt: c.CreatedAt}
}

func toSubscriptionResponse(s *entity.Subscription) *dto.SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &dto.SubscriptionResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Plan:      s.Plan,
		StartDate: s.StartDate.Format(time.DateOnly),
		EndDate:   s.EndDate.Format(time.DateOnly),
		Active:    s.Active,
	}
}

// ToUserResponse expuesto para el caso de uso de autenticación.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		RUT:       u.RUT,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{ID: b.ID, CompanyID: b.CompanyID, Name: b.Name, Address: b.Address}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Category:    p.Category,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{ID: s.ID, CompanyID: s.CompanyID, Name: s.Name, RUT: s.RUT, Contact: s.Contact}
}

func toInventoryResponse(i *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:           i.ID,
		BranchID:     i.BranchID,
		ProductID:    i.ProductID,
		Stock:        i.Stock,
		ReorderPoint: i.ReorderPoint,
	}
}

func toLineItems(items []entity.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LineItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Subtotal:  it.Subtotal(),
		})
	}
	return out
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:         p.ID,
		BranchID:   p.BranchID,
		SupplierID: p.SupplierID,
		Date:       p.Date.Format(time.DateOnly),
		Total:      p.Total,
		Items:      toLineItems(p.Items),
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        s.ID,
		BranchID:  s.BranchID,
		UserID:    s.UserID,
		Total:     s.Total,
		CreatedAt: s.CreatedAt,
		Items:     toLineItems(s.Items),
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:            o.ID,
		CompanyID:     o.CompanyID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status,
		Total:         o.Total,
		CreatedAt:     o.CreatedAt,
		Items:         toLineItems(o.Items),
	}
}

// limitPtr nil para ilimitado (se serializa como null).
func limitPtr(l plan.Limit) *int {
	if l.Unlimited {
		return nil
	}
	n := l.Max
	return &n
}
