package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food item status values reported by the frontend.
const (
	FoodStatusFresh   = "fresh"
	FoodStatusWarning = "warning"
	FoodStatusExpired = "expired"
)

// FoodItem is a perishable item with an expiry date and storage location.
type FoodItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          string             `bson:"user_id" json:"userId"`
	Name            string             `bson:"name" json:"name"`
	Quantity        float64            `bson:"quantity" json:"quantity"`
	Unit            string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Category        string             `bson:"category,omitempty" json:"category,omitempty"`
	ExpiryDate      string             `bson:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	StorageLocation string             `bson:"storage_location,omitempty" json:"storageLocation,omitempty"`
	Status          string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}

// CreateFoodItemRequest is the payload for POST /api/food.
type CreateFoodItemRequest struct {
	Name            string  `json:"name" validate:"required"`
	Quantity        float64 `json:"quantity" validate:"gte=0"`
	Unit            string  `json:"unit" validate:"omitempty,oneof=pcs g kg ml l pack bottle can box"`
	Category        string  `json:"category"`
	ExpiryDate      string  `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	StorageLocation string  `json:"storageLocation" validate:"omitempty,oneof=fridge freezer pantry counter"`
	Status          string  `json:"status" validate:"omitempty,oneof=fresh warning expired"`
}

// UpdateFoodItemRequest allows partial updates; only provided fields overwrite.
type UpdateFoodItemRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Quantity        *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit            *string  `json:"unit,omitempty" validate:"omitempty,oneof=pcs g kg ml l pack bottle can box"`
	Category        *string  `json:"category,omitempty"`
	ExpiryDate      *string  `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StorageLocation *string  `json:"storageLocation,omitempty" validate:"omitempty,oneof=fridge freezer pantry counter"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=fresh warning expired"`
}

// Set builds the $set document from the provided fields.
func (r UpdateFoodItemRequest) Set() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Quantity != nil {
		set["quantity"] = *r.Quantity
	}
	if r.Unit != nil {
		set["unit"] = *r.Unit
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.ExpiryDate != nil {
		set["expiry_date"] = *r.ExpiryDate
	}
	if r.StorageLocation != nil {
		set["storage_location"] = *r.StorageLocation
	}
	if r.Status != nil {
		set["status"] = *r.Status
	}
	return set
}
