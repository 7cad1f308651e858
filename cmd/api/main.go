package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cancha-central/pos-api/internal/application/service"
	"github.com/cancha-central/pos-api/internal/config"
	"github.com/cancha-central/pos-api/internal/infrastructure/database"
	"github.com/cancha-central/pos-api/internal/infrastructure/repository"
	"github.com/cancha-central/pos-api/internal/presentation/http/handler"
	"github.com/cancha-central/pos-api/internal/presentation/http/routes"
	"github.com/cancha-central/pos-api/internal/tabs"
	"github.com/cancha-central/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
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
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
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
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewPaidOrderRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	counterRepo := repository.NewCounterRepository(db)

	// The in-memory tab board: one fixed tab per court plus walk-up tabs
	courtNames := make([]string, cfg.Venue.CourtCount)
	for i := range courtNames {
		courtNames[i] = fmt.Sprintf("%s %d", cfg.Venue.CourtNamePrefix, i+1)
	}
	registry := tabs.NewRegistry(courtNames)

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	authService := service.NewAuthService(userRepo, jwtManager, auditService)
	userService := service.NewUserService(userRepo, auditService)
	productService := service.NewProductService(productRepo, categoryRepo, counterRepo, auditService)
	categoryService := service.NewCategoryService(categoryRepo)
	customerService := service.NewCustomerService(customerRepo, counterRepo, auditService)
	tabService := service.NewTabService(registry, productRepo, customerRepo)
	settlementService := service.NewSettlementService(registry, orderRepo, productRepo, customerRepo, counterRepo, auditService)
	ledgerService := service.NewLedgerService(ledgerRepo, customerRepo, auditService)
	reportService := service.NewReportService(orderRepo, ledgerRepo)
	dashboardService := service.NewDashboardService(orderRepo, ledgerRepo, productRepo, customerRepo, registry)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Tab:        handler.NewTabHandler(tabService),
		Settlement: handler.NewSettlementHandler(settlementService),
		Product:    handler.NewProductHandler(productService),
		Category:   handler.NewCategoryHandler(categoryService),
		Customer:   handler.NewCustomerHandler(customerService),
		Ledger:     handler.NewLedgerHandler(ledgerService),
		Report:     handler.NewReportHandler(reportService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		User:       handler.NewUserHandler(userService),
		Audit:      handler.NewAuditHandler(auditService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		UserRepo:   userRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
