package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WasteRecord logs a discarded item, optionally with a photo.
type WasteRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string             `bson:"user_id" json:"userId"`
	ItemName     string             `bson:"item_name" json:"itemName"`
	Quantity     float64            `bson:"quantity" json:"quantity"`
	Unit         string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	Reason       string             `bson:"reason,omitempty" json:"reason,omitempty"`
	WastedAt     string             `bson:"wasted_at,omitempty" json:"wastedAt,omitempty"`
	CostEstimate float64            `bson:"cost_estimate,omitempty" json:"costEstimate,omitempty"`
	PhotoURL     string             `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

// CreateWasteRecordRequest is the payload for POST /api/waste. It is
// accepted both as JSON and as multipart form fields alongside a photo.
type CreateWasteRecordRequest struct {
	ItemName     string  `json:"itemName" form:"itemName" validate:"required"`
	Quantity     float64 `json:"quantity" form:"quantity" validate:"gte=0"`
	Unit         string  `json:"unit" form:"unit" validate:"omitempty,oneof=pcs g kg ml l pack bottle can box"`
	Category     string  `json:"category" form:"category"`
	Reason       string  `json:"reason" form:"reason" validate:"omitempty,oneof=expired spoiled leftover damaged other"`
	WastedAt     string  `json:"wastedAt" form:"wastedAt" validate:"omitempty,datetime=2006-01-02"`
	CostEstimate float64 `json:"costEstimate" form:"costEstimate" validate:"gte=0"`
	ImageURL     string  `json:"imageUrl" form:"imageUrl" validate:"omitempty,url"`
}

// UpdateWasteRecordRequest allows partial updates.
type UpdateWasteRecordRequest struct {
	ItemName     *string  `json:"itemName,omitempty" form:"itemName" validate:"omitempty,min=1"`
	Quantity     *float64 `json:"quantity,omitempty" form:"quantity" validate:"omitempty,gte=0"`
	Unit         *string  `json:"unit,omitempty" form:"unit" validate:"omitempty,oneof=pcs g kg ml l pack bottle can box"`
	Category     *string  `json:"category,omitempty" form:"category"`
	Reason       *string  `json:"reason,omitempty" form:"reason" validate:"omitempty,oneof=expired spoiled leftover damaged other"`
	WastedAt     *string  `json:"wastedAt,omitempty" form:"wastedAt" validate:"omitempty,datetime=2006-01-02"`
	CostEstimate *float64 `json:"costEstimate,omitempty" form:"costEstimate" validate:"omitempty,gte=0"`
	ImageURL     *string  `json:"imageUrl,omitempty" form:"imageUrl" validate:"omitempty,url"`
}

// Set builds the $set document from the provided fields.
func (r UpdateWasteRecordRequest) Set() bson.M {
	set := bson.M{}
	if r.ItemName != nil {
		set["item_name"] = *r.ItemName
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
	if r.Reason != nil {
		set["reason"] = *r.Reason
	}
	if r.WastedAt != nil {
		set["wasted_at"] = *r.WastedAt
	}
	if r.CostEstimate != nil {
		set["cost_estimate"] = *r.CostEstimate
	}
	if r.ImageURL != nil {
		set["photo_url"] = *r.ImageURL
	}
	return set
}
