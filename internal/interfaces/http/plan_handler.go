package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/application/usecase"
)

// PlanHandler catálogo público de planes y selección por el cliente final.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo de planes
// @Tags         plans
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Select godoc
// @Summary      Seleccionar plan (cliente final)
// @Description  Crea la empresa personal si el cliente no tiene una y activa el plan por el período de prueba.
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectPlanRequest  true  "Plan"
// @Success      200   {object}  dto.MyPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/plans/select [post]
func (h *PlanHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectPlanRequest
	if err := bind(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Select(c.UserContext(), principal(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Mine godoc
// @Summary      Plan vigente del usuario
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MyPlanResponse
// @Router       /api/plans/mine [get]
func (h *PlanHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(c.UserContext(), principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
