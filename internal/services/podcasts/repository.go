package podcasts

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podfeed-api/internal/feed"
	"github.com/killallgit/podfeed-api/internal/models"
	"github.com/mmcdole/gofeed"
)

type Repository struct {
	fetcher *feed.Fetcher
}

func NewRepository(fetcher *feed.Fetcher) FeedRepository {
	return &Repository{fetcher: fetcher}
}

// GetPodcast reads the channel element by element and returns as soon as the
// filter's limit is satisfied, without reading the rest of the feed.
func (r *Repository) GetPodcast(ctx context.Context, id string, filter *models.PodcastFilter) (*models.Podcast, error) {
	doc, err := r.fetcher.Open(ctx, id)
	if err != nil {
		return nil, r.translate(id, r.fetcher.FeedURL(id), err)
	}
	defer doc.Close()

	podcast := models.NewPodcast(id)

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("reading podcast %s: %w", id, err)
		}

		ok, err := doc.Read()
		if err != nil {
			return nil, r.translate(id, doc.URL, err)
		}
		if !ok {
			return podcast, nil
		}

		switch doc.ElementType() {
		case feed.ElementItem:
			// A limit below 1 stops at the first item, even if channel
			// metadata follows it.
			if filter.LimitReached(0) {
				return podcast, nil
			}

			item, err := doc.ReadItem()
			if err != nil {
				return nil, r.translate(id, doc.URL, err)
			}
			if !filter.InRange(item.Published) {
				continue
			}

			podcast.Episodes = append(podcast.Episodes, models.PodcastEpisode{
				ID:              item.ID,
				Title:           item.Title,
				Description:     item.Description,
				PublicationDate: item.Published,
			})
			if filter.LimitReached(len(podcast.Episodes)) {
				return podcast, nil
			}

		case feed.ElementLink:
			link, err := doc.ReadLink()
			if err != nil {
				return nil, r.translate(id, doc.URL, err)
			}
			podcast.URL = link.URI

		case feed.ElementCategory:
			category, err := doc.ReadCategory()
			if err != nil {
				return nil, r.translate(id, doc.URL, err)
			}
			podcast.Categories = append(podcast.Categories, category.Name)

		default:
			content, err := doc.ReadContent()
			if err != nil {
				return nil, r.translate(id, doc.URL, err)
			}
			if content.Namespace != "" {
				continue
			}
			switch content.Name {
			case "title":
				podcast.Title = content.Value
			case "description":
				podcast.Description = content.Value
			}
		}
	}
}

// translate maps feed and transport errors to the package's error model
func (r *Repository) translate(id, feedURL string, err error) error {
	var httpErr gofeed.HTTPError
	switch {
	case errors.Is(err, feed.ErrNoFeed):
		return fmt.Errorf("%w: %s (%v)", ErrPodcastNotFound, id, err)
	case errors.Is(err, feed.ErrMalformedFeed), errors.Is(err, feed.ErrUnsupportedFeed):
		return fmt.Errorf("parsing feed %s: %w", feedURL, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("reading podcast %s: %w", id, err)
	case errors.As(err, &httpErr):
		return &UpstreamError{URL: feedURL, StatusCode: httpErr.StatusCode, Err: httpErr}
	default:
		return &UpstreamError{URL: feedURL, Err: err}
	}
}
