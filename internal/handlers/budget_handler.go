package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/larderlog/backend/internal/models"
)

// CreateBudget inserts a budget owned by the caller.
func CreateBudget(c *fiber.Ctx) error {
	var req models.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	budget := models.Budget{
		ID:        primitive.NewObjectID(),
		UserID:    ownerID(c),
		Month:     req.Month,
		Amount:    req.Amount,
		Category:  req.Category,
		CreatedAt: time.Now(),
	}
	if err := budgetStore.Insert(c.Context(), budget); err != nil {
		return storeErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(budget)
}

// ListBudgets returns the caller's budgets, newest first.
func ListBudgets(c *fiber.Ctx) error {
	budgets, err := budgetStore.ListByOwner(c.Context(), ownerID(c))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(budgets)
}

// GetBudget returns one of the caller's budgets.
func GetBudget(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	budget, err := budgetStore.GetOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(budget)
}

// UpdateBudget overwrites only the provided fields.
func UpdateBudget(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req models.UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	budget, err := budgetStore.UpdateOwned(c.Context(), ownerID(c), id, req.Set())
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(budget)
}

// DeleteBudget hard-deletes and returns the document.
func DeleteBudget(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	budget, err := budgetStore.DeleteOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(budget)
}
