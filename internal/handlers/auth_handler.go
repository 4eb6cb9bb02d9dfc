package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/larderlog/backend/internal/middleware"
	"github.com/larderlog/backend/internal/models"
	"github.com/larderlog/backend/internal/services"
)

// RegisterHandler creates an account and returns it with a session token.
// An admin role in the payload is only honored when the request itself
// carries a valid admin session.
func RegisterHandler(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	allowAdmin := false
	if auth := c.Get("Authorization"); auth != "" {
		token := strings.TrimPrefix(auth, "Bearer ")
		if caller, err := services.SessionUser(c.Context(), token); err == nil && caller.Role == models.RoleAdmin {
			allowAdmin = true
		}
	}

	user, token, err := services.RegisterUser(c.Context(), req, allowAdmin)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to register user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// LoginHandler authenticates by email and password.
func LoginHandler(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, token, err := services.LoginUser(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to log in"})
	}

	return c.JSON(fiber.Map{"user": user, "token": token})
}

// MeHandler returns the authenticated caller.
func MeHandler(c *fiber.Ctx) error {
	user, ok := c.Locals(middleware.LocalUser).(models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please authenticate"})
	}
	return c.JSON(user)
}

// UpdateProfileHandler updates the caller's own profile. The target user
// comes from the verified token, not the request body.
func UpdateProfileHandler(c *fiber.Ctx) error {
	user, ok := c.Locals(middleware.LocalUser).(models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please authenticate"})
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := services.UpdateProfile(c.Context(), user.ID, req)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(updated)
}

// LogoutHandler revokes the presented session token.
func LogoutHandler(c *fiber.Ctx) error {
	user, ok := c.Locals(middleware.LocalUser).(models.User)
	token, tokenOK := c.Locals(middleware.LocalToken).(string)
	if !ok || !tokenOK {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please authenticate"})
	}

	if err := services.LogoutUser(c.Context(), user.ID, token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to log out"})
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}
