package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/larderlog/backend/internal/config"
	"github.com/larderlog/backend/internal/db"
	"github.com/larderlog/backend/internal/handlers"
	"github.com/larderlog/backend/internal/logger"
	"github.com/larderlog/backend/internal/middleware"
	"github.com/larderlog/backend/internal/services"
	"github.com/larderlog/backend/internal/storage"
)

func main() {
	if err := logger.Init(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.L.Fatalf("failed to load config: %v", err)
	}

	// Initialize Fiber
	app := fiber.New()
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Initialize MinIO and MongoDB
	storage.InitMinio(cfg.Minio)
	mongoDB := db.ConnectMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)

	services.InitAuth(cfg.JWT.Secret, mongoDB.Collection("users"))
	handlers.InitHandlers(mongoDB, services.NewChatService(cfg.Chat))
	handlers.InitAdminHandler(mongoDB)

	// Auth Routes
	auth := app.Group("/api/auth")
	auth.Post("/register", handlers.RegisterHandler)
	auth.Post("/login", handlers.LoginHandler)
	auth.Get("/me", middleware.AuthMiddleware, handlers.MeHandler)
	auth.Patch("/profile", middleware.AuthMiddleware, handlers.UpdateProfileHandler)
	auth.Post("/logout", middleware.AuthMiddleware, handlers.LogoutHandler)

	// Admin Routes
	admin := auth.Group("/admin", middleware.AuthMiddleware, middleware.AdminMiddleware)
	admin.Get("/users", handlers.ListUsers)
	admin.Get("/users/:id", handlers.GetUserByID)
	admin.Patch("/users/:id", handlers.AdminUpdateUser)
	admin.Delete("/users/:id", handlers.AdminDeleteUser)

	// Resource Routes, all scoped to the authenticated owner
	api := app.Group("/api")

	products := api.Group("/products", middleware.AuthMiddleware)
	products.Post("/", handlers.CreateProduct)
	products.Get("/", handlers.ListProducts)
	products.Get("/:id", handlers.GetProduct)
	products.Put("/:id", handlers.UpdateProduct)
	products.Delete("/:id", handlers.DeleteProduct)

	categories := api.Group("/category", middleware.AuthMiddleware)
	categories.Post("/", handlers.CreateCategory)
	categories.Get("/", handlers.ListCategories)
	categories.Get("/:id", handlers.GetCategory)
	categories.Put("/:id", handlers.UpdateCategory)
	categories.Delete("/:id", handlers.DeleteCategory)

	food := api.Group("/food", middleware.AuthMiddleware)
	food.Post("/", handlers.CreateFoodItem)
	food.Get("/", handlers.ListFoodItems)
	food.Get("/:id", handlers.GetFoodItem)
	food.Put("/:id", handlers.UpdateFoodItem)
	food.Delete("/:id", handlers.DeleteFoodItem)

	// Path kept as published; existing clients depend on it.
	shopping := api.Group("/shoppinList", middleware.AuthMiddleware)
	shopping.Post("/", handlers.CreateShoppingListItem)
	shopping.Get("/", handlers.ListShoppingListItems)
	shopping.Get("/:id", handlers.GetShoppingListItem)
	shopping.Put("/:id", handlers.UpdateShoppingListItem)
	shopping.Delete("/:id", handlers.DeleteShoppingListItem)

	budgets := api.Group("/budgets", middleware.AuthMiddleware)
	budgets.Post("/", handlers.CreateBudget)
	budgets.Get("/", handlers.ListBudgets)
	budgets.Get("/:id", handlers.GetBudget)
	budgets.Put("/:id", handlers.UpdateBudget)
	budgets.Delete("/:id", handlers.DeleteBudget)

	waste := api.Group("/waste", middleware.AuthMiddleware)
	waste.Post("/", handlers.CreateWasteRecord)
	waste.Get("/", handlers.ListWasteRecords)
	waste.Get("/:id", handlers.GetWasteRecord)
	waste.Put("/:id", handlers.UpdateWasteRecord)
	waste.Delete("/:id", handlers.DeleteWasteRecord)

	api.Get("/dashboard", middleware.AuthMiddleware, handlers.GetDashboard)
	api.Post("/chat", middleware.AuthMiddleware, handlers.Chat)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.MongoClient.Ping(c.Context(), nil); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "db": "unhealthy"})
		}
		return c.JSON(fiber.Map{"status": "ok", "db": "healthy"})
	})

	logger.L.Infow("starting server", "port", cfg.Port)
	logger.L.Fatal(app.Listen(":" + cfg.Port))
}
