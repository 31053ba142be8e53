package routes

import (
	"time"

	"vvms/internal/adapters/http/handlers"
	"vvms/internal/adapters/http/middleware"
	"vvms/internal/adapters/persistence/repositories"
	"vvms/internal/config"
	"vvms/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	violationRepo := repositories.NewViolationRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Initialize services
	violationService := services.NewViolationService(violationRepo)
	exportService := services.NewExportService(violationRepo)
	authService := services.NewAuthService(userRepo, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	violationHandler := handlers.NewViolationHandler(violationService, exportService)
	statsHandler := handlers.NewStatsHandler(violationService)
	masterHandler := handlers.NewMasterHandler()

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, rate limited)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Master data routes (public, cacheable)
	masterRoutes := apiV1.Group("/master", middleware.MasterDataCache(time.Hour))
	masterRoutes.Get("/vehicle-types", masterHandler.ListVehicleTypes)
	masterRoutes.Get("/violation-types", masterHandler.ListViolationTypes)
	masterRoutes.Get("/statuses", masterHandler.ListStatuses)

	// Violation routes (authenticated)
	violationRoutes := apiV1.Group("/violations")
	violationRoutes.Use(middleware.AuthMiddleware(cfg))
	violationRoutes.Post("/", violationHandler.Create)
	violationRoutes.Get("/", violationHandler.List)
	violationRoutes.Get("/export", violationHandler.Export)
	violationRoutes.Get("/search", violationHandler.Search)
	violationRoutes.Get("/status/:status", violationHandler.GetByStatus)
	violationRoutes.Get("/:id", violationHandler.GetByID)
	violationRoutes.Put("/:id", violationHandler.Update)
	violationRoutes.Patch("/:id/status", violationHandler.UpdateStatus)
	// Officers file and amend records; only admins remove them
	violationRoutes.Delete("/:id", middleware.AdminOnly(), violationHandler.Delete)

	// Statistics routes (authenticated)
	statsRoutes := apiV1.Group("/statistics")
	statsRoutes.Use(middleware.AuthMiddleware(cfg))
	statsRoutes.Get("/", statsHandler.GetStatistics)
}
