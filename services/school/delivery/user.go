package delivery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schoolms/config"
	"schoolms/domain"
	"schoolms/middleware"
)

type userHandler struct {
	uc domain.UserUseCase
}

func NewUserHandler(app *fiber.App, uc domain.UserUseCase, authRequired fiber.Handler) {
	handler := &userHandler{
		uc: uc,
	}

	group := app.Group("/api/users")
	group.Get("/", authRequired, middleware.RoleRequired(domain.RoleAdmin), handler.GetAllUsers)
	group.Get("/:id", authRequired, middleware.RoleRequired(domain.RoleAdmin), handler.GetUserByID)
	group.Put("/:id", authRequired, handler.UpdateUser)
}

func (h *userHandler) GetAllUsers(c *fiber.Ctx) error {
	claims := actorClaims(c)

	users, err := h.uc.GetAllUsers(c.Context())
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusInternalServerError, "GetAllUsers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get users",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetAllUsers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Users retrieved successfully",
		"data":    users,
	})
}

func (h *userHandler) GetUserByID(c *fiber.Ctx) error {
	claims := actorClaims(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "GetUserByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid user id",
		})
	}

	user, err := h.uc.GetUserByID(c.Context(), id)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "GetUserByID")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetUserByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User retrieved successfully",
		"data":    user,
	})
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	claims := actorClaims(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid user id",
		})
	}

	if !domain.CanUpdateUser(claims, id) {
		config.PrintLogInfo(&claims.Email, fiber.StatusForbidden, "UpdateUser")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Not authorized",
		})
	}

	var patch domain.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	user, err := h.uc.UpdateUser(c.Context(), id, &patch)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "UpdateUser")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update user",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "UpdateUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}
