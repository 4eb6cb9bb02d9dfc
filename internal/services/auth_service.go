package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/larderlog/backend/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("please authenticate")
)

var (
	jwtSecret []byte
	users     *mongo.Collection
)

const tokenTTL = 72 * time.Hour

// InitAuth wires the signing secret and the users collection.
func InitAuth(secret string, userColl *mongo.Collection) {
	jwtSecret = []byte(secret)
	users = userColl
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken signs a JWT carrying the user id and role.
func GenerateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates the signature and extracts the user id and role.
func ParseToken(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	userID, userOK := claims["user_id"].(string)
	role, roleOK := claims["role"].(string)
	if !userOK || !roleOK {
		return "", "", ErrInvalidToken
	}
	return userID, role, nil
}

// SessionUser resolves a presented token to its user. The token must both
// carry a valid signature and still be present in the user's stored token
// list; a token pulled by logout no longer authenticates.
func SessionUser(ctx context.Context, tokenString string) (models.User, error) {
	userID, _, err := ParseToken(tokenString)
	if err != nil {
		return models.User{}, err
	}
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}

	var user models.User
	err = users.FindOne(ctx, bson.M{"_id": objID, "tokens": tokenString}).Decode(&user)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}
	return user, nil
}

// RegisterUser creates an account and issues its first session token.
// The requested role is only honored when the caller is already an admin;
// plain registration cannot mint admins.
func RegisterUser(ctx context.Context, req models.RegisterRequest, allowAdmin bool) (models.User, string, error) {
	var existing models.User
	err := users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		return models.User{}, "", ErrEmailTaken
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return models.User{}, "", err
	}

	role := models.RoleUser
	if allowAdmin && req.Role == models.RoleAdmin {
		role = models.RoleAdmin
	}

	user := models.User{
		ID:             primitive.NewObjectID(),
		Username:       req.Username,
		Email:          req.Email,
		Password:       hashed,
		Role:           role,
		ProfilePicture: req.ProfilePicture,
		CreatedAt:      time.Now(),
	}

	token, err := GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	user.Tokens = []string{token}

	if _, err := users.InsertOne(ctx, user); err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// LoginUser authenticates by email and password and issues a new token.
// Unknown email and wrong password are indistinguishable to the caller.
func LoginUser(ctx context.Context, email, password string) (models.User, string, error) {
	var user models.User
	err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if !VerifyPassword(password, user.Password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", err
	}

	_, err = users.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$push": bson.M{"tokens": token}},
	)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// LogoutUser pulls the presented token from the user's session list so
// SessionUser subsequently rejects it.
func LogoutUser(ctx context.Context, userID primitive.ObjectID, tokenString string) error {
	_, err := users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"tokens": tokenString}},
	)
	return err
}

// UpdateProfile applies the self-service allow-list (username, email,
// profile picture) and returns the updated user. Role is untouchable here.
func UpdateProfile(ctx context.Context, userID primitive.ObjectID, req models.UpdateProfileRequest) (models.User, error) {
	set := bson.M{}
	if req.Username != nil {
		set["username"] = *req.Username
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.ProfilePicture != nil {
		set["profile_picture"] = *req.ProfilePicture
	}

	var user models.User
	if len(set) == 0 {
		err := users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
		return user, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := users.FindOneAndUpdate(ctx, bson.M{"_id": userID}, bson.M{"$set": set}, opts).Decode(&user)
	return user, err
}
