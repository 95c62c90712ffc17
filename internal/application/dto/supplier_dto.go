package dto

// SupplierRequest alta o modificación de proveedor.
type SupplierRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	RUT       string `json:"rut" validate:"omitempty,max=12"`
	Contact   string `json:"contact" validate:"max=200"`
	CompanyID string `json:"company_id"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	RUT       string `json:"rut"`
	Contact   string `json:"contact"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
