package entity

// Supplier proveedor de una empresa.
type Supplier struct {
	ID        string
	CompanyID string
	Name      string
	RUT       string
	Contact   string
}
