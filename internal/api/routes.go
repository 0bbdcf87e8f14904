package api

import (
	"github.com/gin-gonic/gin"
)

// RouteConfig holds routing options.
type RouteConfig struct {
	RateLimitRPS   int
	RateLimitBurst int
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler, cfg RouteConfig) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(handler.telemetry.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, handler.logger))
	{
		// Classification endpoints
		classify := v1.Group("/classify")
		{
			classify.POST("", handler.Classify)            // POST /api/v1/classify
			classify.POST("/batch", handler.ClassifyBatch) // POST /api/v1/classify/batch
		}

		// Validation endpoint
		v1.POST("/validate", handler.Validate) // POST /api/v1/validate

		// Recipe endpoints
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", handler.ListRecipes)    // GET /api/v1/recipes
			recipes.GET("/:id", handler.GetRecipe)  // GET /api/v1/recipes/:id
		}

		// Statistics endpoint
		v1.GET("/stats", handler.GetStats) // GET /api/v1/stats
	}
}
