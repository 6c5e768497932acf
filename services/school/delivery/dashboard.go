package delivery

import (
	"github.com/gofiber/fiber/v2"

	"schoolms/config"
	"schoolms/domain"
)

type dashboardHandler struct {
	uc domain.DashboardUseCase
}

func NewDashboardHandler(app *fiber.App, uc domain.DashboardUseCase, authRequired fiber.Handler) {
	handler := &dashboardHandler{
		uc: uc,
	}

	group := app.Group("/api/dashboard")
	group.Get("/stats", authRequired, handler.GetStats)
}

func (h *dashboardHandler) GetStats(c *fiber.Ctx) error {
	claims := actorClaims(c)

	stats, err := h.uc.GetStats(c.Context(), claims)
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusInternalServerError, "GetStats")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get dashboard stats",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetStats")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard stats retrieved successfully",
		"data":    stats,
	})
}
