package models

import (
	"time"

	"gorm.io/gorm"
)

// Fetch outcomes recorded in FeedStat.LastOutcome
const (
	OutcomeFound         = "found"
	OutcomeNotFound      = "not_found"
	OutcomeParseFailure  = "parse_failure"
	OutcomeUpstreamError = "upstream_error"
)

// FeedStat tracks how often a podcast feed was fetched and how the last fetch went.
// Only counters are kept; feed content is never stored.
type FeedStat struct {
	gorm.Model
	PodcastID        string     `json:"podcast_id" gorm:"uniqueIndex;not null"`
	FetchCount       int64      `json:"fetch_count" gorm:"default:0"`
	NotFoundCount    int64      `json:"not_found_count" gorm:"default:0"`
	FailureCount     int64      `json:"failure_count" gorm:"default:0"`
	LastOutcome      string     `json:"last_outcome"`
	LastEpisodeCount int        `json:"last_episode_count"`
	LastDurationMs   int64      `json:"last_duration_ms"`
	LastFetchedAt    *time.Time `json:"last_fetched_at"`
}

// TableName overrides the default table name
func (FeedStat) TableName() string {
	return "feed_stats"
}
