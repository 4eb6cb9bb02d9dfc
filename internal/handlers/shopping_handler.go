package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/larderlog/backend/internal/models"
)

// CreateShoppingListItem inserts a shopping-list entry owned by the caller.
func CreateShoppingListItem(c *fiber.Ctx) error {
	var req models.CreateShoppingListItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item := models.ShoppingListItem{
		ID:        primitive.NewObjectID(),
		UserID:    ownerID(c),
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Category:  req.Category,
		Note:      req.Note,
		CreatedAt: time.Now(),
	}
	if err := shoppingStore.Insert(c.Context(), item); err != nil {
		return storeErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// ListShoppingListItems returns the caller's shopping list, newest first.
func ListShoppingListItems(c *fiber.Ctx) error {
	items, err := shoppingStore.ListByOwner(c.Context(), ownerID(c))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(items)
}

// GetShoppingListItem returns one of the caller's entries.
func GetShoppingListItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	item, err := shoppingStore.GetOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(item)
}

// UpdateShoppingListItem overwrites only the provided fields.
func UpdateShoppingListItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req models.UpdateShoppingListItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item, err := shoppingStore.UpdateOwned(c.Context(), ownerID(c), id, req.Set())
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(item)
}

// DeleteShoppingListItem hard-deletes and returns the document.
func DeleteShoppingListItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	item, err := shoppingStore.DeleteOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(item)
}
