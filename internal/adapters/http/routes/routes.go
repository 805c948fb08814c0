package routes

import (
	"antlogistics/internal/adapters/http/handlers"
	"antlogistics/internal/adapters/http/middleware"
	"antlogistics/internal/adapters/persistence/repositories"
	"antlogistics/internal/config"
	"antlogistics/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	warehouseRepo := repositories.NewWarehouseRepository(db)
	commodityRepo := repositories.NewCommodityRepository(db)
	operatorRepo := repositories.NewOperatorRepository(db)
	stockRepo := repositories.NewStockRecordRepository(db)

	// Services (explicit dependency injection, no ambient state)
	authService := services.NewAuthService(operatorRepo, cfg)
	warehouseService := services.NewWarehouseService(warehouseRepo)
	commodityService := services.NewCommodityService(commodityRepo)
	stockService := services.NewStockService(stockRepo, warehouseRepo, commodityRepo, operatorRepo)
	operatorService := services.NewOperatorService(operatorRepo)
	statsService := services.NewStatsService(db)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	warehouseHandler := handlers.NewWarehouseHandler(warehouseService)
	commodityHandler := handlers.NewCommodityHandler(commodityService)
	stockHandler := handlers.NewStockHandler(stockService)
	operatorHandler := handlers.NewOperatorHandler(operatorService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Warehouse routes (authenticated)
	warehouseRoutes := apiV1.Group("/warehouses")
	warehouseRoutes.Use(middleware.AuthMiddleware(cfg))
	warehouseRoutes.Post("/", warehouseHandler.Create)
	warehouseRoutes.Get("/", warehouseHandler.List)
	warehouseRoutes.Get("/by-code/:code", warehouseHandler.GetByCode)
	warehouseRoutes.Get("/:id", warehouseHandler.GetByID)
	warehouseRoutes.Delete("/:id", warehouseHandler.Deactivate)

	// Commodity routes (authenticated)
	commodityRoutes := apiV1.Group("/commodities")
	commodityRoutes.Use(middleware.AuthMiddleware(cfg))
	commodityRoutes.Post("/", commodityHandler.Create)
	commodityRoutes.Get("/", commodityHandler.List)
	commodityRoutes.Get("/by-sku/:sku", commodityHandler.GetBySku)
	commodityRoutes.Get("/:id", commodityHandler.GetByID)
	commodityRoutes.Delete("/:id", commodityHandler.Deactivate)

	// Stock record routes (authenticated, append-only)
	stockRoutes := apiV1.Group("/stock-records")
	stockRoutes.Use(middleware.AuthMiddleware(cfg))
	stockRoutes.Post("/", stockHandler.Create)
	stockRoutes.Get("/", stockHandler.List)
	stockRoutes.Get("/:id", stockHandler.GetByID)

	// Profile routes (authenticated)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	profileRoutes.Put("/password", operatorHandler.ChangePassword)

	// Operator management routes (admin only)
	operatorRoutes := apiV1.Group("/operators")
	operatorRoutes.Use(middleware.AuthMiddleware(cfg))
	operatorRoutes.Use(middleware.AdminOnly())
	operatorRoutes.Post("/", operatorHandler.Create)
	operatorRoutes.Get("/", operatorHandler.List)
	operatorRoutes.Get("/:id", operatorHandler.GetByID)
	operatorRoutes.Put("/:id", operatorHandler.Update)

	// Stats (authenticated)
	apiV1.Get("/stats", middleware.AuthMiddleware(cfg), statsHandler.GetStats)
}
