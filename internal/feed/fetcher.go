package feed

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// IDPlaceholder is replaced with the podcast ID in a feed URL template
const IDPlaceholder = "{id}"

// sniffSize is how much of the body is inspected to detect the feed type
const sniffSize = 4096

// FetcherOptions configures the upstream feed source
type FetcherOptions struct {
	URLTemplate  string        // e.g. https://www.dr.dk/mu/feed/{id}.xml?format=podcast
	Timeout      time.Duration // 0 leaves the deadline to the caller's context
	UserAgent    string
	MaxBodyBytes int64 // 0 = no limit
}

// DefaultFetcherOptions returns the options for the DR podcast feed source
func DefaultFetcherOptions() FetcherOptions {
	return FetcherOptions{
		URLTemplate: "https://www.dr.dk/mu/feed/" + IDPlaceholder + ".xml?format=podcast",
		Timeout:     30 * time.Second,
		UserAgent:   "PodfeedAPI/1.0",
	}
}

// Fetcher opens feed documents from the upstream source
type Fetcher struct {
	client  *http.Client
	options FetcherOptions
}

// NewFetcher creates a fetcher. A nil client gets a default one with the
// configured timeout.
func NewFetcher(options FetcherOptions, client *http.Client) *Fetcher {
	if options.URLTemplate == "" {
		options.URLTemplate = DefaultFetcherOptions().URLTemplate
	}
	if options.UserAgent == "" {
		options.UserAgent = DefaultFetcherOptions().UserAgent
	}
	if client == nil {
		client = &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		}
	}
	return &Fetcher{client: client, options: options}
}

// FeedURL builds the upstream address for a podcast ID
func (f *Fetcher) FeedURL(id string) string {
	return strings.ReplaceAll(f.options.URLTemplate, IDPlaceholder, url.PathEscape(id))
}

// Document is an open feed response. Close must be called.
type Document struct {
	*Reader
	URL  string
	body io.ReadCloser
}

// Close releases the underlying response body
func (d *Document) Close() error {
	return d.body.Close()
}

// Open requests the feed for id and returns a streaming reader over it.
// An upstream 404 is reported as ErrNoFeed, other non-2xx statuses as a
// gofeed.HTTPError, and Atom or JSON documents as ErrUnsupportedFeed.
func (f *Fetcher) Open(ctx context.Context, id string) (*Document, error) {
	feedURL := f.FeedURL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.options.UserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting feed: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: upstream returned %s", ErrNoFeed, resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, gofeed.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	var body io.Reader = resp.Body
	if f.options.MaxBodyBytes > 0 {
		body = io.LimitReader(body, f.options.MaxBodyBytes)
	}

	buffered := bufio.NewReaderSize(body, sniffSize)
	prefix, err := buffered.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		resp.Body.Close()
		return nil, fmt.Errorf("reading feed: %w", err)
	}

	switch gofeed.DetectFeedType(bytes.NewReader(prefix)) {
	case gofeed.FeedTypeAtom, gofeed.FeedTypeJSON:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFeed, resp.Header.Get("Content-Type"))
	}

	return &Document{
		Reader: NewReader(buffered),
		URL:    feedURL,
		body:   resp.Body,
	}, nil
}
