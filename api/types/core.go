package types

import "time"

// Core data types used across API responses

// Podcast is a podcast with the episodes that matched the request filter
type Podcast struct {
	ID          string    `json:"id" example:"genstart"`
	Title       string    `json:"title" example:"Genstart"`
	URL         *string   `json:"url" example:"https://www.dr.dk/lyd/p1/genstart"` // null when the feed has no channel link
	Description string    `json:"description"`
	Categories  []string  `json:"categories"`
	Episodes    []Episode `json:"episodes"`
}

// Episode is a single feed item
type Episode struct {
	ID              string    `json:"id" example:"urn:dr:mu:manifest:11802458155"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PublicationDate time.Time `json:"publicationDate" example:"2020-01-24T14:30:00+02:00"`
}

// FeedStat holds the fetch counters for one podcast ID
type FeedStat struct {
	PodcastID        string     `json:"podcastId"`
	FetchCount       int64      `json:"fetchCount"`
	NotFoundCount    int64      `json:"notFoundCount"`
	FailureCount     int64      `json:"failureCount"`
	LastOutcome      string     `json:"lastOutcome" example:"found"` // found, not_found, parse_failure, upstream_error
	LastEpisodeCount int        `json:"lastEpisodeCount"`
	LastDurationMs   int64      `json:"lastDurationMs"`
	LastFetchedAt    *time.Time `json:"lastFetchedAt,omitempty"`
}
