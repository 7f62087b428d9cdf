package podcasts

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podfeed-api/api/types"
	podcastsService "github.com/killallgit/podfeed-api/internal/services/podcasts"
	apperrors "github.com/killallgit/podfeed-api/pkg/errors"
	"go.uber.org/zap"
)

// GetPodcast returns a podcast and its episodes read from the upstream feed
// @Summary      Get podcast
// @Description  Fetch the podcast's RSS feed and return its metadata and episodes in feed order.
// @Description  Episodes outside the publication date range are skipped; the feed is read only until limit episodes match.
// @Description  An unknown podcast ID returns 404 with an empty body.
// @Tags         podcasts
// @Produce      json
// @Param        id                    path   string true  "Podcast ID" example(genstart)
// @Param        publicationDateStart  query  string false "Earliest publication date, inclusive (ISO 8601)" example(2020-01-24T14:30:00+02:00)
// @Param        publicationDateEnd    query  string false "Latest publication date, inclusive (ISO 8601)" example(2020-02-01T00:00:00+02:00)
// @Param        limit                 query  int    false "Maximum number of episodes" example(3)
// @Success      200 {object} types.Podcast "Podcast with matching episodes"
// @Failure      400 {object} types.ErrorResponse "Invalid filter"
// @Failure      404 "Podcast not found"
// @Failure      502 {object} types.ErrorResponse "Feed could not be read"
// @Failure      504 {object} types.ErrorResponse "Feed source timed out"
// @Failure      500 {object} types.ErrorResponse "Failed to fetch podcast"
// @Router       /podcasts/{id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID := c.Param("id")

		var query types.PodcastFilterQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			types.SendInvalidInput(c, "limit", err)
			return
		}
		filter, err := query.ToFilter()
		if err != nil {
			types.SendInvalidInput(c, "filter", err)
			return
		}

		podcast, err := deps.PodcastService.GetPodcast(c.Request.Context(), podcastID, filter)
		if err != nil {
			if podcastsService.IsNotFound(err) {
				types.SendNotFoundEmpty(c)
				return
			}
			deps.Log().Error("failed to get podcast", zap.String("podcast_id", podcastID), zap.Error(err))
			types.SendError(c, toAppError(err, deps.FeedTimeout))
			return
		}

		types.SendSuccess(c, types.FromModelPodcast(podcast))
	}
}

// toAppError maps service errors to API errors. feedTimeout is reported on
// timeouts.
func toAppError(err error, feedTimeout time.Duration) *apperrors.AppError {
	var upstream *podcastsService.UpstreamError
	switch {
	case podcastsService.IsTimeout(err):
		return apperrors.TimeoutError("fetch podcast feed", feedTimeout).WithCause(err)
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "request cancelled")
	case podcastsService.ClassifyOutcome(err) == podcastsService.OutcomeParseFailure:
		return apperrors.ExternalServiceError("podcast feed", err).
			WithDetail("reason", "feed could not be parsed")
	case errors.As(err, &upstream):
		appErr := apperrors.ExternalServiceError("podcast feed", err)
		if upstream.StatusCode != 0 {
			appErr.WithDetail("upstream_status", upstream.StatusCode)
		}
		return appErr
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to fetch podcast")
	}
}
