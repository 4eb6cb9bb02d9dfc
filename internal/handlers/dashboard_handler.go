package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/larderlog/backend/internal/services"
)

// GetDashboard composes the caller's per-collection counts and waste cost
// total into a single read.
func GetDashboard(c *fiber.Ctx) error {
	summary, err := services.BuildDashboard(c.Context(), ownerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build dashboard"})
	}
	return c.JSON(summary)
}
