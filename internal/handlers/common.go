package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/larderlog/backend/internal/middleware"
	"github.com/larderlog/backend/internal/models"
	"github.com/larderlog/backend/internal/services"
	"github.com/larderlog/backend/internal/store"
)

var validate = validator.New()

var (
	productStore  *store.Store[models.Product]
	foodStore     *store.Store[models.FoodItem]
	shoppingStore *store.Store[models.ShoppingListItem]
	budgetStore   *store.Store[models.Budget]
	categoryStore *store.Store[models.Category]
	wasteStore    *store.Store[models.WasteRecord]
	chat          *services.ChatService
)

// InitHandlers wires the resource stores and supporting services.
func InitHandlers(db *mongo.Database, chatSvc *services.ChatService) {
	productStore = store.New[models.Product](db.Collection("products"))
	foodStore = store.New[models.FoodItem](db.Collection("food_items"))
	shoppingStore = store.New[models.ShoppingListItem](db.Collection("shopping_list"))
	budgetStore = store.New[models.Budget](db.Collection("budgets"))
	categoryStore = store.New[models.Category](db.Collection("categories"))
	wasteStore = store.New[models.WasteRecord](db.Collection("waste_records"))
	chat = chatSvc

	services.InitWaste(wasteStore)
	services.InitDashboard(db)
}

// ownerID returns the authenticated caller's id, placed in locals by the
// auth middleware. Resource ownership always derives from it, never from
// client-supplied headers.
func ownerID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.LocalUserID).(string)
	return id
}

func pathID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

// storeErr maps store failures to the wire: an invisible or missing
// document is 404, anything else is a 500.
func storeErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database operation failed"})
}
