package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/vendorpulse-api/internal/application/service"
	"github.com/sangkips/vendorpulse-api/internal/config"
	"github.com/sangkips/vendorpulse-api/internal/infrastructure/database"
	"github.com/sangkips/vendorpulse-api/internal/infrastructure/repository"
	"github.com/sangkips/vendorpulse-api/internal/presentation/http/handler"
	"github.com/sangkips/vendorpulse-api/internal/presentation/http/routes"
	"github.com/sangkips/vendorpulse-api/pkg/oauth"
	"github.com/sangkips/vendorpulse-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	poRepo := repository.NewPurchaseOrderRepository(db)
	perfRepo := repository.NewPerformanceRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	vendorService := service.NewVendorService(vendorRepo, perfRepo)
	poService := service.NewPurchaseOrderService(poRepo, vendorRepo)
	metricsService := service.NewMetricsService(vendorRepo, poRepo, perfRepo)

	// Every purchase-order write triggers metric recomputation
	poService.RegisterObserver(metricsService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Vendor:        handler.NewVendorHandler(vendorService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(poService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
