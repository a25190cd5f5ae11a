package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stockledger/internal/config"
	"stockledger/internal/handler"
	"stockledger/internal/middleware"
	"stockledger/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	partyH *handler.PartyHandler,
	stockH *handler.StockHandler,
	recordH *handler.RecordHandler,
	analyticsH *handler.AnalyticsHandler,
	invoiceH *handler.InvoiceHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	if cfg.Server.Environment != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Party directory
	parties := protected.Group("/parties")
	parties.POST("", partyH.Create)
	parties.GET("", partyH.List)
	parties.GET("/:id", partyH.GetByID)
	parties.PUT("/:id", partyH.Update)
	parties.DELETE("/:id", partyH.Delete)

	// Stock collections and derived views. Static segments are registered
	// before the :kind routes so "summary" and friends never parse as kinds.
	stock := protected.Group("/stock")
	stock.GET("/summary", stockH.Summary)
	stock.GET("/items", stockH.Items)
	stock.GET("/next-invoice", invoiceH.NextInvoice)
	stock.POST("/:kind", stockH.Create)
	stock.GET("/:kind", stockH.List)
	stock.GET("/:kind/:id", stockH.GetByID)
	stock.PUT("/:kind/:id", stockH.Update)
	stock.DELETE("/:kind/:id", stockH.Delete)

	// Cross-kind record listing
	protected.GET("/records", recordH.List)

	// Reporting
	protected.GET("/reports/analytics", analyticsH.Analytics)
	protected.GET("/dashboard/stats", analyticsH.DashboardStats)

	// Invoices
	invoice := protected.Group("/invoice")
	invoice.GET("/next-number", invoiceH.NextNumber)
	invoice.GET("/:id", invoiceH.GetByID)

	// Exports
	export := protected.Group("/export")
	export.GET("/csv", exportH.CSV)
	export.GET("/xlsx", exportH.XLSX)

	return r
}
