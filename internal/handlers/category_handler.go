package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/larderlog/backend/internal/models"
)

// CreateCategory inserts a category owned by the caller.
func CreateCategory(c *fiber.Ctx) error {
	var req models.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	category := models.Category{
		ID:        primitive.NewObjectID(),
		UserID:    ownerID(c),
		Name:      req.Name,
		Icon:      req.Icon,
		Color:     req.Color,
		CreatedAt: time.Now(),
	}
	if err := categoryStore.Insert(c.Context(), category); err != nil {
		return storeErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// ListCategories returns the caller's categories, newest first.
func ListCategories(c *fiber.Ctx) error {
	categories, err := categoryStore.ListByOwner(c.Context(), ownerID(c))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(categories)
}

// GetCategory returns one of the caller's categories.
func GetCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	category, err := categoryStore.GetOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(category)
}

// UpdateCategory overwrites only the provided fields. Renaming a category
// does not cascade to documents referencing it by name.
func UpdateCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req models.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	category, err := categoryStore.UpdateOwned(c.Context(), ownerID(c), id, req.Set())
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(category)
}

// DeleteCategory hard-deletes and returns the document.
func DeleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	category, err := categoryStore.DeleteOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(category)
}
