package entity

// Branch sucursal física de una empresa. La cantidad por empresa está limitada por el plan.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
}
