package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podfeed-api/api/health"
	"github.com/killallgit/podfeed-api/api/podcasts"
	"github.com/killallgit/podfeed-api/api/types"
	"github.com/killallgit/podfeed-api/api/version"
	_ "github.com/killallgit/podfeed-api/docs/swagger"
	"github.com/killallgit/podfeed-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimit config.RateLimitConfig, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Podcast lookups hit the upstream feed, so only they are rate limited
	var podcastMiddleware gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if rateLimit.Enabled {
		podcastMiddleware = PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rateLimit.RequestsPerSecond, rateLimit.Burst)
	}

	podcasts.RegisterRoutes(engine.Group("/podcasts"), deps, podcastMiddleware)
	podcasts.RegisterStatsRoutes(engine.Group("/stats"), deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "The requested endpoint was not found",
			Details: map[string]string{"path": c.Request.URL.Path},
		})
	}
}
