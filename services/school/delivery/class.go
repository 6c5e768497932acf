package delivery

import (
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"schoolms/config"
	"schoolms/domain"
	"schoolms/middleware"
)

type classHandler struct {
	uc domain.ClassUseCase
}

func NewClassHandler(app *fiber.App, uc domain.ClassUseCase, authRequired fiber.Handler) {
	handler := &classHandler{
		uc: uc,
	}

	group := app.Group("/api/classes")
	group.Post("/", authRequired, handler.CreateClass)
	group.Get("/", authRequired, handler.GetAllClasses)
	group.Get("/:id", authRequired, handler.GetClassByID)
	group.Put("/:id", authRequired, handler.UpdateClass)
	group.Delete("/:id", authRequired, middleware.RoleRequired(domain.RoleAdmin), handler.DeleteClass)
}

func (h *classHandler) CreateClass(c *fiber.Ctx) error {
	claims := actorClaims(c)

	var req domain.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"error":   govalidator.ErrorsByField(err),
		})
	}

	class, err := h.uc.CreateClass(c.Context(), &req, claims)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "CreateClass")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create class",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusCreated, "CreateClass")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Class created successfully",
		"data":    class,
	})
}

func (h *classHandler) GetAllClasses(c *fiber.Ctx) error {
	claims := actorClaims(c)

	classes, err := h.uc.GetAllClasses(c.Context(), claims)
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusInternalServerError, "GetAllClasses")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get classes",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetAllClasses")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Classes retrieved successfully",
		"data":    classes,
	})
}

func (h *classHandler) GetClassByID(c *fiber.Ctx) error {
	claims := actorClaims(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "GetClassByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid class id",
		})
	}

	class, err := h.uc.GetClassByID(c.Context(), id)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "GetClassByID")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Class not found",
		})
	}

	// A class the caller does not own is indistinguishable from a missing one.
	if !domain.CanViewClass(claims, class.TeacherID) {
		config.PrintLogInfo(&claims.Email, fiber.StatusNotFound, "GetClassByID")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Class not found",
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetClassByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class retrieved successfully",
		"data":    class,
	})
}

func (h *classHandler) UpdateClass(c *fiber.Ctx) error {
	claims := actorClaims(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid class id",
		})
	}

	var patch domain.ClassPatch
	if err := c.BodyParser(&patch); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	class, err := h.uc.UpdateClass(c.Context(), id, &patch)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "UpdateClass")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update class",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "UpdateClass")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class updated successfully",
		"data":    class,
	})
}

func (h *classHandler) DeleteClass(c *fiber.Ctx) error {
	claims := actorClaims(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "DeleteClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid class id",
		})
	}

	if err := h.uc.DeleteClass(c.Context(), id); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "DeleteClass")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete class",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "DeleteClass")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class deleted successfully",
	})
}
