package types

import "github.com/killallgit/podfeed-api/internal/models"

// FromModelPodcast transforms a domain podcast to its API representation
func FromModelPodcast(p *models.Podcast) *Podcast {
	if p == nil {
		return nil
	}

	result := &Podcast{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Categories:  make([]string, 0, len(p.Categories)),
		Episodes:    make([]Episode, 0, len(p.Episodes)),
	}
	if p.URL != nil {
		u := p.URL.String()
		result.URL = &u
	}
	result.Categories = append(result.Categories, p.Categories...)
	for _, e := range p.Episodes {
		result.Episodes = append(result.Episodes, Episode{
			ID:              e.ID,
			Title:           e.Title,
			Description:     e.Description,
			PublicationDate: e.PublicationDate,
		})
	}
	return result
}

// FromModelFeedStat transforms a stored feed stat
func FromModelFeedStat(s *models.FeedStat) *FeedStat {
	if s == nil {
		return nil
	}
	return &FeedStat{
		PodcastID:        s.PodcastID,
		FetchCount:       s.FetchCount,
		NotFoundCount:    s.NotFoundCount,
		FailureCount:     s.FailureCount,
		LastOutcome:      s.LastOutcome,
		LastEpisodeCount: s.LastEpisodeCount,
		LastDurationMs:   s.LastDurationMs,
		LastFetchedAt:    s.LastFetchedAt,
	}
}

// FromModelFeedStats transforms a list of feed stats
func FromModelFeedStats(stats []models.FeedStat) []FeedStat {
	result := make([]FeedStat, 0, len(stats))
	for i := range stats {
		result = append(result, *FromModelFeedStat(&stats[i]))
	}
	return result
}
