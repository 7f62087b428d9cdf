package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podfeed-api/api/types"
)

// RegisterRoutes registers podcast routes
// Rate limiting is applied at the route registration level
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, podcastMiddleware gin.HandlerFunc) {
	// GET /podcasts/:id - Podcast with filtered episodes, read from its feed
	router.GET("/:id", podcastMiddleware, GetPodcast(deps))

	// GET /podcasts/:id/stats - Fetch statistics for a podcast ID
	router.GET("/:id/stats", GetPodcastStats(deps))
}

// RegisterStatsRoutes registers the fetch statistics listing
func RegisterStatsRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /stats - Most recently fetched podcasts
	router.GET("", ListStats(deps))
}
