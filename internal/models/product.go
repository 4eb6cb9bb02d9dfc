package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a pantry item tracked in the home inventory.
type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     string             `bson:"user_id" json:"userId"`
	Name       string             `bson:"name" json:"name"`
	Quantity   float64            `bson:"quantity" json:"quantity"`
	Unit       string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Category   string             `bson:"category,omitempty" json:"category,omitempty"`
	Price      float64            `bson:"price,omitempty" json:"price,omitempty"`
	ExpiryDate string             `bson:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}

// CreateProductRequest is the payload for POST /api/products.
type CreateProductRequest struct {
	Name       string  `json:"name" validate:"required"`
	Quantity   float64 `json:"quantity" validate:"gte=0"`
	Unit       string  `json:"unit" validate:"omitempty,oneof=pcs g kg ml l pack bottle can box"`
	Category   string  `json:"category"`
	Price      float64 `json:"price" validate:"gte=0"`
	ExpiryDate string  `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProductRequest allows partial updates; only provided fields overwrite.
type UpdateProductRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Quantity   *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit       *string  `json:"unit,omitempty" validate:"omitempty,oneof=pcs g kg ml l pack bottle can box"`
	Category   *string  `json:"category,omitempty"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ExpiryDate *string  `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Set builds the $set document from the provided fields.
func (r UpdateProductRequest) Set() bson.M {
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
	if r.Price != nil {
		set["price"] = *r.Price
	}
	if r.ExpiryDate != nil {
		set["expiry_date"] = *r.ExpiryDate
	}
	return set
}
