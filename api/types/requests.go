package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/killallgit/podfeed-api/internal/models"
	apperrors "github.com/killallgit/podfeed-api/pkg/errors"
)

// PodcastFilterQuery holds the query parameters of GET /podcasts/{id}
type PodcastFilterQuery struct {
	PublicationDateStart string `form:"publicationDateStart" example:"2020-01-24T14:30:00+02:00"`
	PublicationDateEnd   string `form:"publicationDateEnd" example:"2020-02-01T00:00:00+02:00"`
	Limit                *int   `form:"limit" example:"3"`
}

// StatsQuery holds the query parameters of GET /stats
type StatsQuery struct {
	Limit int `form:"limit" example:"20"`
}

// ParseISO8601 parses a date or date-time query value. Values without a
// zone are read as UTC. A '+' in the zone offset that was decoded to a space
// is restored.
func ParseISO8601(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if i := strings.LastIndex(value, " "); i > 0 && i < len(value)-1 &&
		strings.Contains(value[:i], "T") && value[i+1] >= '0' && value[i+1] <= '9' {
		value = value[:i] + "+" + value[i+1:]
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not an ISO 8601 date", value)
	}
	return t, nil
}

// ToFilter converts the query to a domain filter. It returns nil when no
// filter parameter was given.
func (q *PodcastFilterQuery) ToFilter() (*models.PodcastFilter, error) {
	if q.PublicationDateStart == "" && q.PublicationDateEnd == "" && q.Limit == nil {
		return nil, nil
	}

	filter := &models.PodcastFilter{Limit: q.Limit}

	if q.PublicationDateStart != "" {
		start, err := ParseISO8601(q.PublicationDateStart)
		if err != nil {
			return nil, apperrors.ValidationError("publicationDateStart", err.Error())
		}
		filter.PublicationDateStart = &start
	}

	if q.PublicationDateEnd != "" {
		end, err := ParseISO8601(q.PublicationDateEnd)
		if err != nil {
			return nil, apperrors.ValidationError("publicationDateEnd", err.Error())
		}
		filter.PublicationDateEnd = &end
	}

	return filter, nil
}
