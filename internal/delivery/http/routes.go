package http

import (
	"github.com/gin-gonic/gin"
	"github.com/wattshop/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Static product image assets served by filename
	if cfg.Data.ImagesDir != "" {
		router.Static("/images", cfg.Data.ImagesDir)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(AuthMiddleware(cfg.Auth.APIKey))
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/search", handler.SearchProducts)
			products.GET("/price-range", handler.ProductsByPriceRange)
			products.GET("/wattage-range", handler.ProductsByWattageRange)
			products.GET("/:id", handler.GetProduct)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", handler.ListCategories)
			categories.GET("/:category/products", handler.ProductsByCategory)
		}

		v1.GET("/metadata", handler.CatalogMetadata)
		v1.POST("/admin/reload", handler.ReloadCatalog)
	}

	return router
}
