package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmlee/storefront-backend/config"
	"github.com/jmlee/storefront-backend/internal/app/controller"
	"github.com/jmlee/storefront-backend/internal/app/repository"
	"github.com/jmlee/storefront-backend/internal/app/service"
	"github.com/jmlee/storefront-backend/internal/cart"
	"github.com/jmlee/storefront-backend/internal/db"
	"github.com/jmlee/storefront-backend/internal/middleware"
	"github.com/jmlee/storefront-backend/internal/router"
	"github.com/jmlee/storefront-backend/internal/scheduler"
	"github.com/jmlee/storefront-backend/internal/storage"
	"github.com/jmlee/storefront-backend/pkg/logger"
	"github.com/jmlee/storefront-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Storefront Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed database (optional)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize Redis (guest cart persistence)
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize Redis", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Initialize upload storage
	fileStore, err := buildStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize upload storage", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	visitorRepo := repository.NewVisitorLogRepository(db.GetDB())

	// Initialize services
	productService := service.NewProductService(productRepo)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	visitorService := service.NewVisitorService(visitorRepo)
	adminService, err := service.NewAdminService(
		cfg.Admin.Password,
		cfg.Admin.JWTSecret,
		cfg.Admin.TokenExpiry,
	)
	if err != nil {
		logger.Fatal("Failed to initialize admin service", err)
	}

	cartStore := cart.NewRedisStore(redis.GetClient(), cfg.Redis.CartTTL)

	// Initialize controllers
	productController := controller.NewProductController(productService)
	categoryController := controller.NewCategoryController(categoryService)
	cartController := controller.NewCartController(cartStore, productService)
	uploadController := controller.NewUploadController(fileStore, cfg.Upload)
	adminController := controller.NewAdminController(adminService)
	statsController := controller.NewStatsController(visitorService)

	// Initialize middleware
	adminMiddleware := middleware.NewAdminMiddleware(cfg.Admin.JWTSecret)

	// Start visitor log retention scheduler
	retentionScheduler := scheduler.NewRetentionScheduler(visitorService, cfg.Analytics.RetentionDays)
	if err := retentionScheduler.Start(); err != nil {
		logger.Fatal("Failed to start retention scheduler", err)
	}
	defer retentionScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		productController,
		categoryController,
		cartController,
		uploadController,
		adminController,
		statsController,
		adminMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}

func buildStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		), nil
	default:
		return storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.LocalBase)
	}
}
