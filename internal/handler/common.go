package handler

import (
	"errors"

	"go-bizadmin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Helper to read the authenticated user id from context (set by RequireAuth).
func currentUserID(c *fiber.Ctx) uuid.UUID {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Helper to parse a UUID route parameter.
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondError maps service failures to the response taxonomy: validation
// failures are 400 (nothing was written), missing rows are 404, everything
// else is a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case service.IsValidation(err), errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
