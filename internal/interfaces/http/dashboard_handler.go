package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bm16036/TestQRMenuDigital/internal/application/usecase"
)

// DashboardHandler expone los totales del panel de resumen.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler inyectando el caso de uso.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen devuelve los conteos globales, o los de ?empresa_id si viene.
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Query("empresa_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
