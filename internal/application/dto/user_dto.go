package dto

import "time"

// CreateUserRequest alta de usuario por un administrador (password en texto, se hashea en el caso de uso).
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"required,password"`
	RUT       string `json:"rut" validate:"omitempty,max=12"`
	Role      string `json:"role" validate:"required,oneof=super_admin admin_cliente gerente vendedor cliente_final"`
	CompanyID string `json:"company_id"`
}

// UpdateUserRequest actualización parcial.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,password"`
	RUT      *string `json:"rut" validate:"omitempty,max=12"`
	Role     *string `json:"role" validate:"omitempty,oneof=super_admin admin_cliente gerente vendedor cliente_final"`
	IsActive *bool   `json:"is_active"`
}

// RegisterRequest registro público: siempre crea un cliente_final sin empresa.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	RUT      string `json:"rut" validate:"omitempty,max=12"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	RUT       string    `json:"rut"`
	Role      string    `json:"role"`
	CompanyID string    `json:"company_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// MenuFlagsResponse banderas del menú según plan y rol.
type MenuFlagsResponse struct {
	HasStandardReports bool   `json:"has_standard_reports"`
	HasAdvancedReports bool   `json:"has_advanced_reports"`
	BranchLimit        *int   `json:"branch_limit"` // null = ilimitado
	Role               string `json:"role"`
	Plan               string `json:"plan"`
}

// MeResponse perfil del usuario autenticado.
type MeResponse struct {
	UserResponse
	CompanyName string            `json:"company_name,omitempty"`
	Plan        string            `json:"plan"`
	Menu        MenuFlagsResponse `json:"menu"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest pide un nuevo par de tokens.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// TokenResponse par de tokens JWT.
type TokenResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}
