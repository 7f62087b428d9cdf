package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses an RSS date. Dates without a zone are read as UTC. An
// empty string yields the zero time.
func ParseDate(value string) (time.Time, error) {
	value = strings.Join(strings.Fields(value), " ")
	if value == "" {
		return time.Time{}, nil
	}

	// RFC 822 allows "UT", which has no Go zone abbreviation
	if strings.HasSuffix(value, " UT") {
		value += "C"
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognised date %q: %w", value, err)
	}
	return t, nil
}
