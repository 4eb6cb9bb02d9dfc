package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/larderlog/backend/internal/logger"
	"github.com/larderlog/backend/internal/models"
	"github.com/larderlog/backend/internal/utils"
)

var userCollection *mongo.Collection

// InitAdminHandler wires the users collection.
func InitAdminHandler(db *mongo.Database) {
	userCollection = db.Collection("users")
}

// ListUsers returns all accounts, hashes and session tokens excluded.
func ListUsers(c *fiber.Ctx) error {
	opts := options.Find().SetProjection(bson.M{"password": 0, "tokens": 0})
	cursor, err := userCollection.Find(c.Context(), bson.M{}, opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch users"})
	}
	defer cursor.Close(c.Context())

	users := []models.User{}
	if err := cursor.All(c.Context(), &users); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to decode users"})
	}
	return c.JSON(users)
}

// GetUserByID returns one account.
func GetUserByID(c *fiber.Ctx) error {
	objID, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}

	var user models.User
	err = userCollection.FindOne(c.Context(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(user)
}

// AdminUpdateUser applies the administrative allow-list (username, email,
// role, profile picture) to any account.
func AdminUpdateUser(c *fiber.Ctx) error {
	objID, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}

	var req models.AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	set := bson.M{}
	if req.Username != nil {
		set["username"] = *req.Username
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.ProfilePicture != nil {
		set["profile_picture"] = *req.ProfilePicture
	}

	var user models.User
	if len(set) == 0 {
		err = userCollection.FindOne(c.Context(), bson.M{"_id": objID}).Decode(&user)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = userCollection.FindOneAndUpdate(c.Context(), bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&user)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update user"})
	}
	return c.JSON(user)
}

// AdminDeleteUser hard-deletes an account and fans out deletion of the
// user's resource documents across all collections.
func AdminDeleteUser(c *fiber.Ctx) error {
	objID, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}

	res, err := userCollection.DeleteOne(c.Context(), bson.M{"_id": objID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete user"})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	owner := objID.Hex()
	ctx := c.Context()
	tasks := []utils.ParallelTask{
		func() (interface{}, error) { return productStore.DeleteAllByOwner(ctx, owner) },
		func() (interface{}, error) { return foodStore.DeleteAllByOwner(ctx, owner) },
		func() (interface{}, error) { return shoppingStore.DeleteAllByOwner(ctx, owner) },
		func() (interface{}, error) { return budgetStore.DeleteAllByOwner(ctx, owner) },
		func() (interface{}, error) { return categoryStore.DeleteAllByOwner(ctx, owner) },
		func() (interface{}, error) { return wasteStore.DeleteAllByOwner(ctx, owner) },
	}
	results, errs := utils.RunParallelTasks(tasks)

	var deleted int64
	for i, taskErr := range errs {
		if taskErr != nil {
			logger.L.Warnf("failed to delete resources for user %s: %v", owner, taskErr)
			continue
		}
		deleted += results[i].(int64)
	}

	return c.JSON(fiber.Map{"message": "user deleted", "deletedResources": deleted})
}
