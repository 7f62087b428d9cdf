package podcasts

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/killallgit/podfeed-api/internal/feed"
	"github.com/killallgit/podfeed-api/internal/models"
)

// Common errors
var (
	ErrPodcastNotFound = errors.New("podcast not found")
	ErrMalformedFeed   = feed.ErrMalformedFeed
	ErrUnsupportedFeed = feed.ErrUnsupportedFeed
	ErrStatNotFound    = errors.New("feed statistics not found")
	ErrStatsDisabled   = errors.New("feed statistics are disabled")
)

// UpstreamError represents a failure talking to the feed source
type UpstreamError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("upstream %s: %v", e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// FetchOutcome classifies the result of a podcast lookup
type FetchOutcome string

const (
	OutcomeFound         FetchOutcome = models.OutcomeFound
	OutcomeNotFound      FetchOutcome = models.OutcomeNotFound
	OutcomeParseFailure  FetchOutcome = models.OutcomeParseFailure
	OutcomeUpstreamError FetchOutcome = models.OutcomeUpstreamError
)

// ClassifyOutcome maps the error returned by GetPodcast to an outcome
func ClassifyOutcome(err error) FetchOutcome {
	switch {
	case err == nil:
		return OutcomeFound
	case IsNotFound(err):
		return OutcomeNotFound
	case errors.Is(err, ErrMalformedFeed), errors.Is(err, ErrUnsupportedFeed):
		return OutcomeParseFailure
	default:
		return OutcomeUpstreamError
	}
}

// IsNotFound reports whether err means no feed exists for the podcast ID
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPodcastNotFound)
}

// IsTimeout reports whether err is a deadline or network timeout
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
