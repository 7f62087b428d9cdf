package podcasts

import (
	"context"
	"time"

	"github.com/killallgit/podfeed-api/internal/models"
	"go.uber.org/zap"
)

const (
	defaultStatsLimit = 20
	maxStatsLimit     = 100
)

type Service struct {
	repository FeedRepository
	stats      StatsRepository // nil when the database is disabled
	logger     *zap.Logger
}

func NewService(repository FeedRepository, stats StatsRepository, logger *zap.Logger) PodcastService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repository: repository,
		stats:      stats,
		logger:     logger.Named("podcasts"),
	}
}

// GetPodcast reads the podcast from its feed and records the outcome
func (s *Service) GetPodcast(ctx context.Context, id string, filter *models.PodcastFilter) (*models.Podcast, error) {
	start := time.Now()
	podcast, err := s.repository.GetPodcast(ctx, id, filter)
	duration := time.Since(start)

	outcome := ClassifyOutcome(err)
	episodes := 0
	if podcast != nil {
		episodes = len(podcast.Episodes)
	}

	fields := []zap.Field{
		zap.String("podcast_id", id),
		zap.String("outcome", string(outcome)),
		zap.Int("episodes", episodes),
		zap.Duration("duration", duration),
	}
	switch outcome {
	case OutcomeFound:
		s.logger.Debug("fetched podcast", fields...)
	case OutcomeNotFound:
		s.logger.Info("podcast not found", fields...)
	default:
		s.logger.Warn("failed to fetch podcast", append(fields, zap.Error(err))...)
	}

	s.record(ctx, id, outcome, episodes, duration)

	if err != nil {
		return nil, err
	}
	return podcast, nil
}

// record stores fetch counters. Failures are logged, never returned.
func (s *Service) record(ctx context.Context, id string, outcome FetchOutcome, episodes int, duration time.Duration) {
	if s.stats == nil {
		return
	}
	// the request may already be cancelled; the counters are still written
	if err := s.stats.RecordFetch(context.WithoutCancel(ctx), id, outcome, episodes, duration); err != nil {
		s.logger.Error("failed to record fetch stats", zap.String("podcast_id", id), zap.Error(err))
	}
}

// GetFetchStats returns the fetch counters for a podcast ID
func (s *Service) GetFetchStats(ctx context.Context, podcastID string) (*models.FeedStat, error) {
	if s.stats == nil {
		return nil, ErrStatsDisabled
	}
	return s.stats.GetStat(ctx, podcastID)
}

// ListFetchStats returns up to limit stats, most recently fetched first
func (s *Service) ListFetchStats(ctx context.Context, limit int) ([]models.FeedStat, error) {
	if s.stats == nil {
		return nil, ErrStatsDisabled
	}
	if limit <= 0 {
		limit = defaultStatsLimit
	}
	if limit > maxStatsLimit {
		limit = maxStatsLimit
	}
	return s.stats.ListStats(ctx, limit)
}
