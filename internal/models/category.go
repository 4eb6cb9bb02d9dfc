package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category labels products, food items, budgets and waste records.
// Referenced by name, not id; renames do not cascade.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// CreateCategoryRequest is the payload for POST /api/category.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest allows partial updates.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// Set builds the $set document from the provided fields.
func (r UpdateCategoryRequest) Set() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Icon != nil {
		set["icon"] = *r.Icon
	}
	if r.Color != nil {
		set["color"] = *r.Color
	}
	return set
}
