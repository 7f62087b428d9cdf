package podcasts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/killallgit/podfeed-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsStore struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &StatsStore{db: db}
}

// RecordFetch upserts the counters for podcastID in a single statement
func (s *StatsStore) RecordFetch(ctx context.Context, podcastID string, outcome FetchOutcome, episodeCount int, duration time.Duration) error {
	now := time.Now()

	var notFound, failed int64
	switch outcome {
	case OutcomeNotFound:
		notFound = 1
	case OutcomeParseFailure, OutcomeUpstreamError:
		failed = 1
	}

	stat := models.FeedStat{
		PodcastID:        podcastID,
		FetchCount:       1,
		NotFoundCount:    notFound,
		FailureCount:     failed,
		LastOutcome:      string(outcome),
		LastEpisodeCount: episodeCount,
		LastDurationMs:   duration.Milliseconds(),
		LastFetchedAt:    &now,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "podcast_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"fetch_count":        gorm.Expr("fetch_count + 1"),
			"not_found_count":    gorm.Expr("not_found_count + ?", notFound),
			"failure_count":      gorm.Expr("failure_count + ?", failed),
			"last_outcome":       stat.LastOutcome,
			"last_episode_count": stat.LastEpisodeCount,
			"last_duration_ms":   stat.LastDurationMs,
			"last_fetched_at":    now,
			"updated_at":         now,
		}),
	}).Create(&stat).Error
	if err != nil {
		return fmt.Errorf("recording fetch for %s: %w", podcastID, err)
	}
	return nil
}

// GetStat retrieves the counters for a podcast ID
func (s *StatsStore) GetStat(ctx context.Context, podcastID string) (*models.FeedStat, error) {
	var stat models.FeedStat
	if err := s.db.WithContext(ctx).Where("podcast_id = ?", podcastID).First(&stat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatNotFound
		}
		return nil, fmt.Errorf("getting feed stats: %w", err)
	}
	return &stat, nil
}

// ListStats returns the most recently fetched podcasts first
func (s *StatsStore) ListStats(ctx context.Context, limit int) ([]models.FeedStat, error) {
	var stats []models.FeedStat
	err := s.db.WithContext(ctx).
		Order("last_fetched_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("listing feed stats: %w", err)
	}
	return stats, nil
}
