package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/larderlog/backend/internal/services"
)

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

// Chat forwards the caller's message to the configured chat-completion
// endpoint, with their current food inventory concatenated into the
// system prompt.
func Chat(c *fiber.Ctx) error {
	if chat == nil || !chat.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "chat is not configured"})
	}

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	items, err := foodStore.ListByOwner(c.Context(), ownerID(c))
	if err != nil {
		return storeErr(c, err)
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		line := fmt.Sprintf("%s (%.1f %s", item.Name, item.Quantity, item.Unit)
		if item.ExpiryDate != "" {
			line += ", expires " + item.ExpiryDate
		}
		line += ")"
		lines = append(lines, line)
	}
	inventory := strings.Join(lines, "; ")
	if inventory == "" {
		inventory = "empty"
	}

	reply, err := chat.Complete(c.Context(), inventory, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrChatDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "chat completion failed"})
	}
	return c.JSON(fiber.Map{"reply": reply})
}
