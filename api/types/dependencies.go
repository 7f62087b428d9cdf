package types

import (
	"time"

	"github.com/killallgit/podfeed-api/internal/database"
	"github.com/killallgit/podfeed-api/internal/services/podcasts"
	"go.uber.org/zap"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB // nil when fetch statistics are disabled
	PodcastService podcasts.PodcastService
	Logger         *zap.Logger
	Version        string
	FeedTimeout    time.Duration
}

// Log returns the configured logger or a no-op logger
func (d *Dependencies) Log() *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
