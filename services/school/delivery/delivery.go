package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"schoolms/domain"
)

// statusForError maps repository sentinels onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrBadCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func actorClaims(c *fiber.Ctx) *domain.Claims {
	return c.Locals("user").(*domain.Claims)
}
