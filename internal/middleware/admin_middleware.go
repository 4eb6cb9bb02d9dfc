package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/larderlog/backend/internal/models"
)

// AdminMiddleware restricts a route to admins. It runs after
// AuthMiddleware and inspects the verified principal's role.
func AdminMiddleware(c *fiber.Ctx) error {
	role, ok := c.Locals(LocalRole).(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please authenticate"})
	}
	if role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
	}
	return c.Next()
}
