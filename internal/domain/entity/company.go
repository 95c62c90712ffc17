package entity

import "time"

// Company representa un cliente del SaaS (tenant). Todo dato de negocio cuelga de una Company.
type Company struct {
	ID        string
	Name      string
	RUT       string // RUT chileno, validado con pkg/rut
	Address   string
	CreatedAt time.Time
}
