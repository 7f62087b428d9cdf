package podcasts

import (
	"context"
	"time"

	"github.com/killallgit/podfeed-api/internal/models"
)

// FeedRepository reads podcasts from the upstream feed source
type FeedRepository interface {
	// GetPodcast streams the feed for id, applying filter while reading.
	// A nil filter returns every episode.
	GetPodcast(ctx context.Context, id string, filter *models.PodcastFilter) (*models.Podcast, error)
}

// StatsRepository persists per-podcast fetch counters
type StatsRepository interface {
	RecordFetch(ctx context.Context, podcastID string, outcome FetchOutcome, episodeCount int, duration time.Duration) error
	GetStat(ctx context.Context, podcastID string) (*models.FeedStat, error)
	ListStats(ctx context.Context, limit int) ([]models.FeedStat, error)
}

// PodcastService defines the business logic interface for podcast operations
type PodcastService interface {
	GetPodcast(ctx context.Context, id string, filter *models.PodcastFilter) (*models.Podcast, error)

	// Fetch statistics
	GetFetchStats(ctx context.Context, podcastID string) (*models.FeedStat, error)
	ListFetchStats(ctx context.Context, limit int) ([]models.FeedStat, error)
}
