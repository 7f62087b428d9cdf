package models

import (
	"net/url"
	"time"
)

// Podcast is a podcast channel assembled from a single feed read
type Podcast struct {
	ID          string
	Title       string
	Description string
	URL         *url.URL
	Categories  []string
	Episodes    []PodcastEpisode
}

// NewPodcast returns an empty podcast for the given caller-supplied ID.
// Categories and Episodes are empty, never nil.
func NewPodcast(id string) *Podcast {
	return &Podcast{
		ID:         id,
		Categories: []string{},
		Episodes:   []PodcastEpisode{},
	}
}

// PodcastEpisode represents one feed item
type PodcastEpisode struct {
	ID              string
	Title           string
	Description     string
	PublicationDate time.Time
}

// PodcastFilter narrows the episodes returned for a podcast.
// A nil field is unset; a nil *PodcastFilter means no filtering at all.
type PodcastFilter struct {
	PublicationDateStart *time.Time
	PublicationDateEnd   *time.Time
	Limit                *int
}

// HasLimit reports whether an episode count limit is set
func (f *PodcastFilter) HasLimit() bool {
	return f != nil && f.Limit != nil
}

// LimitReached reports whether count episodes satisfy the limit.
// A limit below 1 is reached before any episode is collected.
func (f *PodcastFilter) LimitReached(count int) bool {
	return f.HasLimit() && count >= *f.Limit
}

// InRange reports whether t lies inside the inclusive publication date range
func (f *PodcastFilter) InRange(t time.Time) bool {
	if f == nil {
		return true
	}
	if f.PublicationDateStart != nil && t.Before(*f.PublicationDateStart) {
		return false
	}
	if f.PublicationDateEnd != nil && t.After(*f.PublicationDateEnd) {
		return false
	}
	return true
}

// IsEmpty reports whether no filter field is set
func (f *PodcastFilter) IsEmpty() bool {
	return f == nil || (f.PublicationDateStart == nil && f.PublicationDateEnd == nil && f.Limit == nil)
}
