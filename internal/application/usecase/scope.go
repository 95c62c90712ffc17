package usecase

import (
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// readScope empresa a la que se restringen las lecturas del principal: "" = todas (super_admin).
func readScope(p entity.Principal) (string, error) {
	if p.Anonymous() {
		return "", domain.ErrUnauthorized
	}
	if p.IsSuperAdmin() {
		return "", nil
	}
	if p.CompanyID == "" {
		return "", domain.ErrCompanyRequired
	}
	return p.CompanyID, nil
}

// writeCompany empresa dueña de un registro nuevo. super_admin debe indicarla; el resto
// escribe siempre en su propia empresa e ignora requested.
func writeCompany(p entity.Principal, requested string) (string, error) {
	if p.Anonymous() {
		return "", domain.ErrUnauthorized
	}
	if p.IsSuperAdmin() {
		if requested == "" {
			return "", domain.NewValidationError("company_id", "Este campo es obligatorio.")
		}
		return requested, nil
	}
	if p.CompanyID == "" {
		return "", domain.ErrCompanyRequired
	}
	return p.CompanyID, nil
}
