package delivery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schoolms/config"
	"schoolms/domain"
)

type notificationHandler struct {
	uc domain.NotificationUseCase
}

func NewNotificationHandler(app *fiber.App, uc domain.NotificationUseCase, authRequired fiber.Handler) {
	handler := &notificationHandler{
		uc: uc,
	}

	group := app.Group("/api/notifications")
	group.Get("/", authRequired, handler.GetNotifications)
	group.Put("/:id/read", authRequired, handler.MarkNotificationRead)
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	claims := actorClaims(c)

	notifications, err := h.uc.GetNotificationsByUser(c.Context(), claims.UserID)
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusInternalServerError, "GetNotifications")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get notifications",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetNotifications")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notifications retrieved successfully",
		"data":    notifications,
	})
}

func (h *notificationHandler) MarkNotificationRead(c *fiber.Ctx) error {
	claims := actorClaims(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "MarkNotificationRead")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid notification id",
		})
	}

	if err := h.uc.MarkNotificationRead(c.Context(), claims.UserID, id); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "MarkNotificationRead")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Notification not found",
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "MarkNotificationRead")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notification marked as read",
	})
}
