package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/larderlog/backend/internal/middleware"
	"github.com/larderlog/backend/internal/models"
	"github.com/larderlog/backend/internal/store"
)

// withTestOwner stands in for the auth middleware in handler tests.
func withTestOwner(owner string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalUserID, owner)
		return c.Next()
	}
}

func productApp(owner string) *fiber.App {
	app := fiber.New()
	grp := app.Group("/api/products", withTestOwner(owner))
	grp.Post("/", CreateProduct)
	grp.Get("/", ListProducts)
	grp.Get("/:id", GetProduct)
	grp.Put("/:id", UpdateProduct)
	grp.Delete("/:id", DeleteProduct)
	return app
}

func jsonRequest(method, target string, body any) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateProduct_MissingName(t *testing.T) {
	app := productApp("owner-a")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/products/", map[string]any{
		"quantity": 2,
		"unit":     "kg",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateProduct_BadExpiryDate(t *testing.T) {
	app := productApp("owner-a")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/products/", map[string]any{
		"name":       "rice",
		"expiryDate": "next tuesday",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateProduct_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stamps owner and timestamps", func(mt *mtest.T) {
		productStore = store.New[models.Product](mt.Coll)
		app := productApp("owner-a")

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/products/", map[string]any{
			"name":       "rice",
			"quantity":   2,
			"unit":       "kg",
			"category":   "grains",
			"price":      3.5,
			"expiryDate": "2027-01-31",
		}))
		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusCreated, resp.StatusCode)

		var created models.Product
		assert.NoError(mt, json.NewDecoder(resp.Body).Decode(&created))
		assert.Equal(mt, "rice", created.Name)
		assert.Equal(mt, "owner-a", created.UserID)
		assert.False(mt, created.ID.IsZero())
		assert.False(mt, created.CreatedAt.IsZero())
	})
}

func TestListProducts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the owner's products", func(mt *mtest.T) {
		productStore = store.New[models.Product](mt.Coll)
		app := productApp("owner-a")

		ns := mt.DB.Name() + "." + mt.Coll.Name()
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "user_id", Value: "owner-a"}, {Key: "name", Value: "beans"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "user_id", Value: "owner-a"}, {Key: "name", Value: "rice"}},
		)
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, last)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/", nil))
		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusOK, resp.StatusCode)

		var listed []models.Product
		assert.NoError(mt, json.NewDecoder(resp.Body).Decode(&listed))
		assert.Len(mt, listed, 2)
	})
}

func TestGetProduct_InvalidID(t *testing.T) {
	app := productApp("owner-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/not-an-id", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetProduct_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("foreign or missing id yields 404", func(mt *mtest.T) {
		productStore = store.New[models.Product](mt.Coll)
		app := productApp("owner-b")

		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		target := "/api/products/" + primitive.NewObjectID().Hex()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteProduct_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleting an absent document yields 404", func(mt *mtest.T) {
		productStore = store.New[models.Product](mt.Coll)
		app := productApp("owner-a")

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		target := "/api/products/" + primitive.NewObjectID().Hex()
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, target, nil))
		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusNotFound, resp.StatusCode)
	})
}
