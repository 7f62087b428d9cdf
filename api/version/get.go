package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podfeed-api/api/types"
)

// Name is reported by the root endpoint and the version command
const Name = "Podfeed API"

// Get handles version requests
// @Summary      API version
// @Tags         system
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	version := "dev"
	if deps != nil && deps.Version != "" {
		version = deps.Version
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VersionResponse{
			Name:        Name,
			Version:     version,
			Description: "Podcast metadata and episodes read from RSS feeds",
			Status:      "running",
		})
	}
}
