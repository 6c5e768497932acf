package delivery

import (
	"fmt"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"schoolms/config"
	"schoolms/domain"
)

type attendanceHandler struct {
	uc domain.AttendanceUseCase
}

func NewAttendanceHandler(app *fiber.App, uc domain.AttendanceUseCase, authRequired fiber.Handler) {
	handler := &attendanceHandler{
		uc: uc,
	}

	group := app.Group("/api/attendance")
	group.Post("/", authRequired, handler.CreateAttendance)
	group.Post("/bulk", authRequired, handler.BulkUpsertAttendance)
	group.Get("/", authRequired, handler.GetAttendanceByClassAndDate)
	group.Get("/student/:id", authRequired, handler.GetAttendanceByStudent)
}

func (h *attendanceHandler) CreateAttendance(c *fiber.Ctx) error {
	claims := actorClaims(c)

	var req domain.AttendanceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"error":   govalidator.ErrorsByField(err),
		})
	}

	record, err := h.uc.CreateAttendance(c.Context(), &req, claims)
	if err != nil {
		status := statusForError(err)
		if status == fiber.StatusInternalServerError {
			// Parse and status validation errors come back as plain errors.
			status = fiber.StatusBadRequest
		}
		config.PrintLogInfo(&claims.Email, status, "CreateAttendance")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to mark attendance",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusCreated, "CreateAttendance")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Attendance marked successfully",
		"data":    record,
	})
}

func (h *attendanceHandler) BulkUpsertAttendance(c *fiber.Ctx) error {
	claims := actorClaims(c)

	var req domain.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "BulkUpsertAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "BulkUpsertAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"error":   govalidator.ErrorsByField(err),
		})
	}

	processed, err := h.uc.BulkUpsertAttendance(c.Context(), &req, claims)
	if err != nil {
		status := statusForError(err)
		if status == fiber.StatusInternalServerError {
			status = fiber.StatusBadRequest
		}
		config.PrintLogInfo(&claims.Email, status, "BulkUpsertAttendance")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to mark attendance",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "BulkUpsertAttendance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Attendance marked for %d students", processed),
	})
}

func (h *attendanceHandler) GetAttendanceByClassAndDate(c *fiber.Ctx) error {
	claims := actorClaims(c)

	classID, err := strconv.Atoi(c.Query("class_id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "GetAttendanceByClassAndDate")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "class_id is required",
		})
	}

	date := c.Query("date")
	if date == "" {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "GetAttendanceByClassAndDate")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "date is required",
		})
	}

	records, err := h.uc.GetAttendanceByClassAndDate(c.Context(), classID, date)
	if err != nil {
		status := statusForError(err)
		if status == fiber.StatusInternalServerError {
			status = fiber.StatusBadRequest
		}
		config.PrintLogInfo(&claims.Email, status, "GetAttendanceByClassAndDate")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get attendance",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetAttendanceByClassAndDate")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance retrieved successfully",
		"data":    records,
	})
}

func (h *attendanceHandler) GetAttendanceByStudent(c *fiber.Ctx) error {
	claims := actorClaims(c)

	studentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "GetAttendanceByStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid student id",
		})
	}

	records, err := h.uc.GetAttendanceByStudent(c.Context(), studentID)
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusInternalServerError, "GetAttendanceByStudent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get attendance history",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetAttendanceByStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance history retrieved successfully",
		"data":    records,
	})
}
