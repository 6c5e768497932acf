package delivery

import (
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"schoolms/config"
	"schoolms/domain"
)

type authHandler struct {
	uc domain.AuthUseCase
}

func NewAuthHandler(app *fiber.App, uc domain.AuthUseCase, authRequired fiber.Handler) {
	handler := &authHandler{
		uc: uc,
	}

	group := app.Group("/api/auth")
	group.Post("/register", handler.Register)
	group.Post("/login", handler.Login)
	group.Get("/me", authRequired, handler.Me)
	group.Put("/password", authRequired, handler.ChangePassword)
	group.Post("/logout", authRequired, handler.Logout)
}

func (h *authHandler) Register(c *fiber.Ctx) error {
	var req domain.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Register")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&req); err != nil {
		config.PrintLogInfo(&req.Email, fiber.StatusBadRequest, "Register")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"error":   govalidator.ErrorsByField(err),
		})
	}

	user, err := h.uc.Register(c.Context(), &req)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&req.Email, status, "Register")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to register user",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&user.Email, fiber.StatusCreated, "Register")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"data":    user,
	})
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&req); err != nil {
		config.PrintLogInfo(&req.Email, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"error":   govalidator.ErrorsByField(err),
		})
	}

	resp, err := h.uc.Login(c.Context(), &req)
	if err != nil {
		config.PrintLogInfo(&req.Email, fiber.StatusUnauthorized, "Login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Incorrect email or password",
		})
	}

	config.PrintLogInfo(&req.Email, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *authHandler) Me(c *fiber.Ctx) error {
	claims := actorClaims(c)

	user, err := h.uc.Me(c.Context(), claims.UserID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&claims.Email, status, "Me")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load profile",
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "Me")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}

func (h *authHandler) ChangePassword(c *fiber.Ctx) error {
	claims := actorClaims(c)

	var req domain.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "ChangePassword")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&req); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "ChangePassword")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"error":   govalidator.ErrorsByField(err),
		})
	}

	if err := h.uc.ChangePassword(c.Context(), claims.UserID, &req); err != nil {
		// A wrong current password is the caller's mistake, not a login issue.
		status := statusForError(err)
		if status == fiber.StatusUnauthorized {
			status = fiber.StatusBadRequest
		}
		config.PrintLogInfo(&claims.Email, status, "ChangePassword")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Incorrect current password",
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "ChangePassword")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Password updated successfully",
	})
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	claims := actorClaims(c)

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "Logout")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully logged out",
	})
}
