package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/larderlog/backend/internal/models"
	"github.com/larderlog/backend/internal/services"
)

// CreateWasteRecord inserts a waste record owned by the caller. The body
// may be JSON or multipart form data with a photo file; an imageUrl field
// bypasses photo storage entirely.
func CreateWasteRecord(c *fiber.Ctx) error {
	var req models.CreateWasteRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec := models.WasteRecord{
		ID:           primitive.NewObjectID(),
		UserID:       ownerID(c),
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Category:     req.Category,
		Reason:       req.Reason,
		WastedAt:     req.WastedAt,
		CostEstimate: req.CostEstimate,
		PhotoURL:     req.ImageURL,
		CreatedAt:    time.Now(),
	}

	// A photo file wins over an imageUrl when both are sent.
	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil
	}

	rec, err = services.CreateWasteRecord(c.Context(), rec, photo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// ListWasteRecords returns the caller's waste records, newest first.
func ListWasteRecords(c *fiber.Ctx) error {
	records, err := wasteStore.ListByOwner(c.Context(), ownerID(c))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(records)
}

// GetWasteRecord returns one of the caller's waste records.
func GetWasteRecord(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	rec, err := wasteStore.GetOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(rec)
}

// UpdateWasteRecord overwrites only the provided fields. A new photo file
// replaces the stored photo URL.
func UpdateWasteRecord(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req models.UpdateWasteRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	set := req.Set()
	if photo, ferr := c.FormFile("photo"); ferr == nil && photo != nil {
		url, uerr := services.SaveWastePhoto(c.Context(), photo)
		if uerr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": uerr.Error()})
		}
		set["photo_url"] = url
	}

	rec, err := wasteStore.UpdateOwned(c.Context(), ownerID(c), id, set)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(rec)
}

// DeleteWasteRecord hard-deletes and returns the document.
func DeleteWasteRecord(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	rec, err := wasteStore.DeleteOwned(c.Context(), ownerID(c), id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(rec)
}
