package feed

import "errors"

var (
	// ErrNoFeed means the response did not contain a feed document at all:
	// an empty body, a body that breaks off before the root element, or a
	// root element other than <rss>.
	ErrNoFeed = errors.New("no feed document")

	// ErrMalformedFeed means an <rss> document was found but could not be read
	ErrMalformedFeed = errors.New("malformed feed")

	// ErrUnsupportedFeed means the document is a feed, but not RSS
	ErrUnsupportedFeed = errors.New("unsupported feed type")
)
