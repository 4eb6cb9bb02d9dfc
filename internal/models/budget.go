package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Budget is a monthly spending target, optionally scoped to a category name.
type Budget struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"userId"`
	Month     string             `bson:"month" json:"month"`
	Amount    float64            `bson:"amount" json:"amount"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// CreateBudgetRequest is the payload for POST /api/budgets.
type CreateBudgetRequest struct {
	Month    string  `json:"month" validate:"required,datetime=2006-01"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Category string  `json:"category"`
}

// UpdateBudgetRequest allows partial updates.
type UpdateBudgetRequest struct {
	Month    *string  `json:"month,omitempty" validate:"omitempty,datetime=2006-01"`
	Amount   *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category *string  `json:"category,omitempty"`
}

// Set builds the $set document from the provided fields.
func (r UpdateBudgetRequest) Set() bson.M {
	set := bson.M{}
	if r.Month != nil {
		set["month"] = *r.Month
	}
	if r.Amount != nil {
		set["amount"] = *r.Amount
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	return set
}
