package routes

import (
	"time"

	"github.com/cancha-central/pos-api/internal/config"
	domainRepo "github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/internal/presentation/http/handler"
	"github.com/cancha-central/pos-api/internal/presentation/http/middleware"
	"github.com/cancha-central/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Tab        *handler.TabHandler
	Settlement *handler.SettlementHandler
	Product    *handler.ProductHandler
	Category   *handler.CategoryHandler
	Customer   *handler.CustomerHandler
	Ledger     *handler.LedgerHandler
	Report     *handler.ReportHandler
	Dashboard  *handler.DashboardHandler
	User       *handler.UserHandler
	Audit      *handler.AuditHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	UserRepo   domainRepo.UserRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.UserRepo))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Tabs and cart mutations
	registerTabRoutes(protected, h)

	// Orders (settled sales)
	registerOrderRoutes(protected, h)

	// Products and categories
	registerProductRoutes(protected, h)
	registerCategoryRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Cash ledger
	registerLedgerRoutes(protected, h)

	// Admin-only routes
	registerAdminRoutes(protected, h)
}

func registerTabRoutes(protected *gin.RouterGroup, h *Handlers) {
	tabs := protected.Group("/tabs")
	{
		tabs.GET("", h.Tab.Board)
		tabs.POST("", h.Tab.Create)
		tabs.GET("/:id", h.Tab.Get)
		tabs.DELETE("/:id", h.Tab.Delete)
		tabs.POST("/:id/park", h.Tab.Park)
		tabs.POST("/:id/resume", h.Tab.Resume)
		tabs.POST("/:id/products", h.Tab.AddProduct)
		tabs.PUT("/:id/products", h.Tab.ChangeQuantity)
		tabs.PUT("/:id/customer", h.Tab.LinkCustomer)
		tabs.POST("/:id/settle", h.Settlement.SettleTab)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Settlement.List)
		orders.POST("/accessories", h.Settlement.SellAccessories)
		orders.GET("/:id", h.Settlement.Get)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.GET("/:id/availability", h.Product.KitAvailability)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/top", h.Customer.TopConsumers)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
	}
}

func registerLedgerRoutes(protected *gin.RouterGroup, h *Handlers) {
	ledger := protected.Group("/ledger")
	{
		ledger.GET("", h.Ledger.List)
		ledger.GET("/categories", h.Ledger.Categories)
		ledger.POST("/income", h.Ledger.RecordIncome)
		ledger.POST("/expenses", h.Ledger.RecordExpense)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("")
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.GET("/dashboard", h.Dashboard.GetStats)

		admin.POST("/products", h.Product.Create)
		admin.POST("/products/kits", h.Product.CreateKit)
		admin.PUT("/products/:id", h.Product.Update)
		admin.DELETE("/products/:id", h.Product.Delete)
		admin.POST("/products/:id/stock", h.Product.AddStock)
		admin.GET("/inventory/valuation", h.Product.Valuation)

		admin.POST("/categories", h.Category.Create)
		admin.PUT("/categories/:id", h.Category.Update)
		admin.DELETE("/categories/:id", h.Category.Delete)

		admin.DELETE("/customers/:id", h.Customer.Delete)

		admin.GET("/reports", h.Report.Get)
		admin.GET("/reports/export", h.Report.Export)

		admin.GET("/users", h.User.List)
		admin.POST("/users", h.User.Create)
		admin.GET("/users/:id", h.User.Get)
		admin.PUT("/users/:id", h.User.Update)
		admin.DELETE("/users/:id", h.User.Delete)

		admin.GET("/audit", h.Audit.List)
	}
}
