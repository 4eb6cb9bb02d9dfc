package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/larderlog/backend/internal/models"
)

// CreateFoodItem inserts a food item owned by the caller.
func CreateFoodItem(c *fiber.Ctx) error {
	var req models.CreateFoodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item := models.FoodItem{
		ID:              primitive.NewObjectID(),
		UserID:          ownerID(c),
		Name:            req.Name,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		Category:        req.Category,
		ExpiryDate:      req.ExpiryDate,
		StorageLocation: req.StorageLocation,
		Status:          req.Status,
		CreatedAt:       time.Now(),
	}
	if item.Status == "" {
		item.Status = models.FoodStatusFresh
	}
	if err := foodStore.Insert(c.Context(), item); err != nil {
		return storeErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// ListFoodItems returns the caller's food items, newest first.
func ListFoodItems(c *fiber.Ctx) error {
	items, err := foodStore.ListByOwner(c.Context(), ownerID(c))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(items)
}

// GetFoodItem returns one of the caller's food items.
func GetFoodItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	item, err := foodStore.GetOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(item)
}

// UpdateFoodItem overwrites only the provided fields.
func UpdateFoodItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req models.UpdateFoodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item, err := foodStore.UpdateOwned(c.Context(), ownerID(c), id, req.Set())
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(item)
}

// DeleteFoodItem hard-deletes and returns the document.
func DeleteFoodItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	item, err := foodStore.DeleteOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(item)
}
