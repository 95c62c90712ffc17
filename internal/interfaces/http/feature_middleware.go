package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
)

// LocalTargetCompany empresa sobre la que opera una ruta restringida por plan.
const LocalTargetCompany = "target_company"

// featureChecker es el contrato mínimo que necesita el middleware para verificar funcionalidades.
// Lo implementa *entitlement.Resolver.
type featureChecker interface {
	HasFeature(ctx context.Context, companyID string, f plan.Feature) (bool, error)
}

// RequireFeature verifica que el plan de la empresa incluya la funcionalidad.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - super_admin no pasa por el plan pero debe indicar ?company=.
//   - 403 PLAN_FEATURE_REQUIRED → el plan no incluye la funcionalidad (o no hay plan activo).
//   - 503 → fallo al consultar la suscripción.
func RequireFeature(feature plan.Feature, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == entity.RoleSuperAdmin {
			target := c.Query("company")
			if target == "" {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company es requerido para super_admin"})
			}
			c.Locals(LocalTargetCompany, target)
			return c.Next()
		}

		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "COMPANY_REQUIRED", Message: "el usuario no está asociado a una compañía"})
		}
		ok, err := checker.HasFeature(c.UserContext(), companyID, feature)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PLAN_CHECK_FAILED",
				Message: "no se pudo verificar el plan, intente más tarde",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PLAN_FEATURE_REQUIRED",
				Message: "su plan no incluye '" + string(feature) + "'",
			})
		}
		c.Locals(LocalTargetCompany, companyID)
		return c.Next()
	}
}

// targetCompany empresa resuelta por RequireFeature.
func targetCompany(c *fiber.Ctx) string { return local(c, LocalTargetCompany) }
