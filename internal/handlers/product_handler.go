package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/larderlog/backend/internal/models"
)

// CreateProduct inserts a product owned by the caller.
func CreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product := models.Product{
		ID:         primitive.NewObjectID(),
		UserID:     ownerID(c),
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		Price:      req.Price,
		ExpiryDate: req.ExpiryDate,
		CreatedAt:  time.Now(),
	}
	if err := productStore.Insert(c.Context(), product); err != nil {
		return storeErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// ListProducts returns the caller's products, newest first.
func ListProducts(c *fiber.Ctx) error {
	products, err := productStore.ListByOwner(c.Context(), ownerID(c))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(products)
}

// GetProduct returns one of the caller's products.
func GetProduct(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	product, err := productStore.GetOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(product)
}

// UpdateProduct overwrites only the provided fields.
func UpdateProduct(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product, err := productStore.UpdateOwned(c.Context(), ownerID(c), id, req.Set())
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(product)
}

// DeleteProduct hard-deletes and returns the document.
func DeleteProduct(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	product, err := productStore.DeleteOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(product)
}
