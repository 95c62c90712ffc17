package entity

// Principal es el usuario autenticado que ejecuta una operación (extraído del JWT).
type Principal struct {
	UserID    string
	CompanyID string
	Role      string
}

// Anonymous informa si la petición llegó sin token.
func (p Principal) Anonymous() bool { return p.UserID == "" }

// IsSuperAdmin atajo para el rol de plataforma.
func (p Principal) IsSuperAdmin() bool { return p.Role == RoleSuperAdmin }

// HasRole informa si el principal tiene alguno de los roles indicados.
func (p Principal) HasRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
