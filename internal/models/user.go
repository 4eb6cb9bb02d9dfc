package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account. The password hash and the active session
// token list are never serialized.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Password       string             `bson:"password,omitempty" json:"-"`
	Role           string             `bson:"role" json:"role"`
	ProfilePicture string             `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
	Tokens         []string           `bson:"tokens,omitempty" json:"-"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Role           string `json:"role" validate:"omitempty,oneof=user admin"`
	ProfilePicture string `json:"profilePicture"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the self-service profile update payload.
// Role is deliberately absent: only admins may change it.
type UpdateProfileRequest struct {
	Username       *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// AdminUpdateUserRequest is the administrative user update payload.
type AdminUpdateUserRequest struct {
	Username       *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Role           *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}
