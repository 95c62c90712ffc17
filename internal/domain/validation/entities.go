package validation

import (
	"fmt"
	"time"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// Company exige nombre; el RUT, si viene, debe tener dígito verificador correcto.
func Company(c *entity.Company, _ time.Time) []Violation {
	return collect(
		Required("name", c.Name),
		RUT("rut", c.RUT),
	)
}

// Subscription exige empresa y plan; la fecha de término no puede preceder al inicio.
func Subscription(s *entity.Subscription, _ time.Time) []Violation {
	return collect(
		Required("company_id", s.CompanyID),
		Required("plan", s.Plan),
		DateRange("end_date", s.StartDate, s.EndDate),
	)
}

// User no valida la contraseña: el hash ya no permite hacerlo (ver Password).
func User(u *entity.User, _ time.Time) []Violation {
	return collect(
		Required("username", u.Username),
		Email("email", u.Email),
		RUT("rut", u.RUT),
		Role("role", u.Role),
		RoleCompany("company", u.Role, u.CompanyID),
	)
}

// Branch exige empresa y nombre.
func Branch(b *entity.Branch, _ time.Time) []Violation {
	return collect(
		Required("company_id", b.CompanyID),
		Required("name", b.Name),
	)
}

// Product valida el formato del SKU y que precio y costo no sean negativos.
func Product(p *entity.Product, _ time.Time) []Violation {
	return collect(
		SKU("sku", p.SKU),
		Required("name", p.Name),
		NonNegative("price", p.Price, MsgNegativePrice),
		NonNegative("cost", p.Cost, MsgNegativeCost),
	)
}

// Inventory exige sucursal y producto, con stock y punto de reposición no negativos.
func Inventory(i *entity.Inventory, _ time.Time) []Violation {
	return collect(
		Required("branch", i.BranchID),
		Required("product", i.ProductID),
		NonNegativeInt("stock", i.Stock, MsgNegativeStock),
		NonNegativeInt("reorder_point", i.ReorderPoint, MsgNegativeReorder),
	)
}

// Supplier exige nombre; el RUT es opcional pero debe ser válido.
func Supplier(s *entity.Supplier, _ time.Time) []Violation {
	return collect(
		Required("name", s.Name),
		RUT("rut", s.RUT),
	)
}

// Purchase compara la fecha por día calendario: now debe venir en la zona del negocio.
func Purchase(p *entity.Purchase, now time.Time) []Violation {
	out := collect(
		Required("branch", p.BranchID),
		Required("supplier", p.SupplierID),
		NonNegative("total", p.Total, MsgNegativeTotal),
		NotAfterToday("date", p.Date, now, MsgFuturePurchase),
	)
	return append(out, items(p.Items)...)
}

// Sale valida cabecera y líneas; created_at no puede ser posterior a now.
func Sale(s *entity.Sale, now time.Time) []Violation {
	out := collect(
		Required("branch", s.BranchID),
		Required("user", s.UserID),
		NonNegative("total", s.Total, MsgNegativeTotal),
		NotInFuture("created_at", s.CreatedAt, now, MsgFutureSale),
	)
	return append(out, items(s.Items)...)
}

// Order valida cliente, estado, total y líneas; created_at no puede ser posterior a now.
func Order(o *entity.Order, now time.Time) []Violation {
	out := collect(
		Required("customer_name", o.CustomerName),
		Email("customer_email", o.CustomerEmail),
		OrderStatus("status", o.Status),
		NonNegative("total", o.Total, MsgNegativeTotal),
		NotInFuture("created_at", o.CreatedAt, now, MsgFutureOrder),
	)
	return append(out, items(o.Items)...)
}

func items(list []entity.LineItem) []Violation {
	var out []Violation
	for i, it := range list {
		prefix := fmt.Sprintf("items[%d].", i)
		out = append(out, collect(
			Required(prefix+"product", it.ProductID),
			MinQuantity(prefix+"quantity", it.Quantity),
			NonNegative(prefix+"price", it.Price, MsgNegativePrice),
		)...)
	}
	return out
}
