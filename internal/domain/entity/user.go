package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin   = "super_admin"
	RoleAdminCliente = "admin_cliente"
	RoleGerente      = "gerente"
	RoleVendedor     = "vendedor"
	RoleClienteFinal = "cliente_final"
)

// Roles lista cerrada de roles, en orden de privilegio.
var Roles = []string{RoleSuperAdmin, RoleAdminCliente, RoleGerente, RoleVendedor, RoleClienteFinal}

// RequiresCompany informa si el rol solo tiene sentido dentro de una empresa.
func RequiresCompany(role string) bool {
	switch role {
	case RoleAdminCliente, RoleGerente, RoleVendedor:
		return true
	}
	return false
}

// User representa una cuenta del sistema. CompanyID vacío solo para super_admin y cliente_final.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca la contraseña plana
	RUT          string
	Role         string
	CompanyID    string
	IsActive     bool
	CreatedAt    time.Time
}
