package delivery

import (
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"schoolms/config"
	"schoolms/domain"
)

type studentHandler struct {
	uc domain.StudentUseCase
}

func NewStudentHandler(app *fiber.App, uc domain.StudentUseCase, authRequired fiber.Handler) {
	handler := &studentHandler{
		uc: uc,
	}

	group := app.Group("/api/students")
	group.Post("/", authRequired, handler.CreateStudent)
	group.Get("/", authRequired, handler.GetAllStudents)
	group.Get("/:id", authRequired, handler.GetStudentByID)
	group.Put("/:id", authRequired, handler.UpdateStudent)
	group.Delete("/:id", authRequired, handler.DeleteStudent)
}

func (h *studentHandler) CreateStudent(c *fiber.Ctx) error {
	claims := actorClaims(c)

	var req domain.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"error":   govalidator.ErrorsByField(err),
		})
	}

	student, err := h.uc.CreateStudent(c.Context(), &req)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "CreateStudent")
		message := "Failed to create student"
		if status == fiber.StatusConflict {
			message = "Student ID already exists"
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusCreated, "CreateStudent")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Student created successfully",
		"data":    student,
	})
}

func (h *studentHandler) GetAllStudents(c *fiber.Ctx) error {
	claims := actorClaims(c)

	filter := domain.StudentFilter{
		Search: c.Query("search"),
	}
	if raw := c.Query("class_id"); raw != "" {
		classID, err := strconv.Atoi(raw)
		if err != nil {
			config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "GetAllStudents")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "invalid class_id",
			})
		}
		filter.ClassID = &classID
	}

	students, err := h.uc.GetAllStudents(c.Context(), &filter)
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusInternalServerError, "GetAllStudents")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get students",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetAllStudents")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Students retrieved successfully",
		"data":    students,
	})
}

func (h *studentHandler) GetStudentByID(c *fiber.Ctx) error {
	claims := actorClaims(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "GetStudentByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid student id",
		})
	}

	student, err := h.uc.GetStudentByID(c.Context(), id)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "GetStudentByID")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Student not found",
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetStudentByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student retrieved successfully",
		"data":    student,
	})
}

func (h *studentHandler) UpdateStudent(c *fiber.Ctx) error {
	claims := actorClaims(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid student id",
		})
	}

	var patch domain.StudentPatch
	if err := c.BodyParser(&patch); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	student, err := h.uc.UpdateStudent(c.Context(), id, &patch)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "UpdateStudent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update student",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "UpdateStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
		"data":    student,
	})
}

func (h *studentHandler) DeleteStudent(c *fiber.Ctx) error {
	claims := actorClaims(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "DeleteStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid student id",
		})
	}

	if err := h.uc.DeleteStudent(c.Context(), id); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "DeleteStudent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete student",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "DeleteStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}
