package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/larderlog/backend/internal/services"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals(LocalUserID)})
	})
	app.Get("/admin-only", AuthMiddleware, AdminMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func userDoc(id primitive.ObjectID, role, token string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "username", Value: "alice"},
		{Key: "email", Value: "alice@example.com"},
		{Key: "password", Value: "hashed"},
		{Key: "role", Value: role},
		{Key: "tokens", Value: bson.A{token}},
		{Key: "created_at", Value: primitive.NewDateTimeFromTime(time.Now())},
	}
}

func bearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	services.InitAuth("mw-secret", nil)
	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	services.InitAuth("mw-secret", nil)
	app := protectedApp()

	req := bearer(httptest.NewRequest(http.MethodGet, "/protected", nil), "not.a.token")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidSession(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("accepts a token present in the session list", func(mt *mtest.T) {
		services.InitAuth("mw-secret", mt.Coll)
		app := protectedApp()

		id := primitive.NewObjectID()
		token, err := services.GenerateToken(id.Hex(), "user")
		assert.NoError(mt, err)

		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(id, "user", token)))

		req := bearer(httptest.NewRequest(http.MethodGet, "/protected", nil), token)
		resp, err := app.Test(req)
		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusOK, resp.StatusCode)
	})

	mt.Run("rejects a revoked token", func(mt *mtest.T) {
		services.InitAuth("mw-secret", mt.Coll)
		app := protectedApp()

		id := primitive.NewObjectID()
		token, err := services.GenerateToken(id.Hex(), "user")
		assert.NoError(mt, err)

		// Logout pulled the token: the session lookup comes back empty.
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		req := bearer(httptest.NewRequest(http.MethodGet, "/protected", nil), token)
		resp, err := app.Test(req)
		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAdminMiddleware(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects a non-admin", func(mt *mtest.T) {
		services.InitAuth("mw-secret", mt.Coll)
		app := protectedApp()

		id := primitive.NewObjectID()
		token, _ := services.GenerateToken(id.Hex(), "user")

		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(id, "user", token)))

		req := bearer(httptest.NewRequest(http.MethodGet, "/admin-only", nil), token)
		resp, err := app.Test(req)
		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusForbidden, resp.StatusCode)
	})

	mt.Run("admits an admin", func(mt *mtest.T) {
		services.InitAuth("mw-secret", mt.Coll)
		app := protectedApp()

		id := primitive.NewObjectID()
		token, _ := services.GenerateToken(id.Hex(), "admin")

		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(id, "admin", token)))

		req := bearer(httptest.NewRequest(http.MethodGet, "/admin-only", nil), token)
		resp, err := app.Test(req)
		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusOK, resp.StatusCode)
	})
}
