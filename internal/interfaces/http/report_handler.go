package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Temucosoft-api/internal/application/analytics"
	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
)

// ReportHandler reportes de ventas. Las rutas van detrás de RequireFeature.
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func reportRange(c *fiber.Ctx) (dto.ReportRange, error) {
	rng := dto.ReportRange{From: c.Query("from"), To: c.Query("to")}
	return rng, dto.Validate(rng)
}

// SalesSummary godoc
// @Summary      Resumen de ventas (plan Estándar o superior)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from     query  string  false  "Desde (2006-01-02), por defecto hace 30 días"
// @Param        to       query  string  false  "Hasta inclusive (2006-01-02), por defecto hoy"
// @Param        company  query  string  false  "Empresa (solo super_admin)"
// @Success      200      {object}  dto.SalesSummaryResponse
// @Failure      403      {object}  dto.ErrorResponse  "El plan no incluye reportes"
// @Router       /api/reports/sales-summary [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	rng, err := reportRange(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.SalesSummary(c.UserContext(), targetCompany(c), rng)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos con margen (plan Premium)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from     query  string  false  "Desde (2006-01-02)"
// @Param        to       query  string  false  "Hasta inclusive (2006-01-02)"
// @Param        limit    query  int     false  "Cantidad de productos"  default(10)
// @Param        company  query  string  false  "Empresa (solo super_admin)"
// @Success      200      {array}   dto.TopProductResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	rng, err := reportRange(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.TopProducts(c.UserContext(), targetCompany(c), rng, c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
