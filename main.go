package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"estoque/internal/config"
	"estoque/internal/database"
	"estoque/internal/handlers"
	"estoque/internal/middleware"
	"estoque/internal/repositories"
	"estoque/internal/services"
	"estoque/pkg/logger"
)

func main() {
	// --- Configuration ---
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.Load()

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// --- Schema Bootstrap ---
	// Must finish before the listener binds; serving without a schema would
	// only produce cascading persistence failures.
	if err := database.EnsureDatabase(cfg); err != nil {
		appLogger.Fatal("failed to ensure database exists", zap.Error(err))
	}
	db, err := database.Connect(cfg)
	if err != nil {
		appLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	if err := database.EnsureSchema(db); err != nil {
		appLogger.Fatal("failed to ensure products table exists", zap.Error(err))
	}
	appLogger.Info("database ready", zap.String("database", cfg.DBName))

	// --- Wiring ---
	productRepo := repositories.NewMySQLProductRepository(db)
	productService := services.NewProductService(productRepo, cfg.QueryTimeout)
	productHandler := handlers.NewProductHandler(productService, appLogger)

	app := newApp(productHandler, cfg)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("starting server", zap.String("port", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			appLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	appLogger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("error during shutdown", zap.Error(err))
	}
	// The pool is closed by the deferred db.Close after in-flight
	// statements finish.
	appLogger.Info("server stopped")
}

// newApp assembles the Fiber app, middleware and routes.
func newApp(productHandler *handlers.ProductHandler, cfg *config.Config) *fiber.App {
	app := fiber.New()

	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(fiberlogger.New())

	productHandler.RegisterRoutes(app, middleware.AdminRequired(cfg.SecurityKey))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
