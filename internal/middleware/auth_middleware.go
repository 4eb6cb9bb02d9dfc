package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/larderlog/backend/internal/services"
)

// Keys under which the authenticated principal is stored in request locals.
const (
	LocalUser   = "user"
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalToken  = "token"
)

// AuthMiddleware verifies the bearer token and attaches the caller's user
// record to the request. Verification fails closed: a bad signature, an
// unknown user, or a token revoked by logout all yield 401.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please authenticate"})
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please authenticate"})
	}

	user, err := services.SessionUser(c.Context(), tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please authenticate"})
	}

	c.Locals(LocalUser, user)
	c.Locals(LocalUserID, user.ID.Hex())
	c.Locals(LocalRole, user.Role)
	c.Locals(LocalToken, tokenString)
	return c.Next()
}
