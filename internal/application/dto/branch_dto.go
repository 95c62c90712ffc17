package dto

// BranchRequest alta o modificación de sucursal. CompanyID solo lo usa super_admin.
type BranchRequest struct {
	Name      string `json:"name" validate:"required,max=150"`
	Address   string `json:"address" validate:"max=255"`
	CompanyID string `json:"company_id"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
}

// BranchListResponse lista paginada de sucursales.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
