package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingListItem is an entry on a user's shopping list.
type ShoppingListItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Quantity  float64            `bson:"quantity" json:"quantity"`
	Unit      string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Purchased bool               `bson:"purchased" json:"purchased"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// CreateShoppingListItemRequest is the payload for POST /api/shoppinList.
type CreateShoppingListItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit" validate:"omitempty,oneof=pcs g kg ml l pack bottle can box"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
}

// UpdateShoppingListItemRequest allows partial updates.
type UpdateShoppingListItemRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Quantity  *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit      *string  `json:"unit,omitempty" validate:"omitempty,oneof=pcs g kg ml l pack bottle can box"`
	Category  *string  `json:"category,omitempty"`
	Purchased *bool    `json:"purchased,omitempty"`
	Note      *string  `json:"note,omitempty"`
}

// Set builds the $set document from the provided fields.
func (r UpdateShoppingListItemRequest) Set() bson.M {
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
	if r.Purchased != nil {
		set["purchased"] = *r.Purchased
	}
	if r.Note != nil {
		set["note"] = *r.Note
	}
	return set
}
