package podcasts

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podfeed-api/api/types"
	podcastsService "github.com/killallgit/podfeed-api/internal/services/podcasts"
	apperrors "github.com/killallgit/podfeed-api/pkg/errors"
	"go.uber.org/zap"
)

// GetPodcastStats returns fetch statistics for a podcast ID
// @Summary      Get podcast fetch statistics
// @Description  Counters recorded for every lookup of the podcast ID. Feed content is never stored.
// @Tags         stats
// @Produce      json
// @Param        id path string true "Podcast ID" example(genstart)
// @Success      200 {object} types.FeedStatResponse
// @Failure      404 {object} types.ErrorResponse "Podcast ID was never fetched"
// @Failure      503 {object} types.ErrorResponse "Statistics are disabled"
// @Router       /podcasts/{id}/stats [get]
func GetPodcastStats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID := c.Param("id")

		stat, err := deps.PodcastService.GetFetchStats(c.Request.Context(), podcastID)
		if err != nil {
			types.SendError(c, statsError(deps, err, apperrors.NotFound("feed statistics", podcastID)))
			return
		}

		types.SendSuccess(c, types.FeedStatResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Feed statistics retrieved successfully",
			},
			Stat: types.FromModelFeedStat(stat),
		})
	}
}

// ListStats returns the most recently fetched podcasts
// @Summary      List fetch statistics
// @Description  Fetch statistics ordered by last fetch time, newest first.
// @Tags         stats
// @Produce      json
// @Param        limit query int false "Maximum results (default 20, max 100)" example(20)
// @Success      200 {object} types.FeedStatsResponse
// @Failure      400 {object} types.ErrorResponse "Invalid limit"
// @Failure      503 {object} types.ErrorResponse "Statistics are disabled"
// @Router       /stats [get]
func ListStats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query types.StatsQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			types.SendInvalidInput(c, "limit", err)
			return
		}

		stats, err := deps.PodcastService.ListFetchStats(c.Request.Context(), query.Limit)
		if err != nil {
			types.SendError(c, statsError(deps, err, nil))
			return
		}

		result := types.FromModelFeedStats(stats)
		types.SendSuccess(c, types.FeedStatsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Feed statistics retrieved successfully",
			},
			Stats: result,
			Count: len(result),
		})
	}
}

func statsError(deps *types.Dependencies, err error, notFound *apperrors.AppError) *apperrors.AppError {
	switch {
	case errors.Is(err, podcastsService.ErrStatsDisabled):
		return apperrors.ServiceUnavailable("feed statistics")
	case notFound != nil && errors.Is(err, podcastsService.ErrStatNotFound):
		return notFound
	default:
		deps.Log().Error("failed to read feed statistics", zap.Error(err))
		return apperrors.DatabaseError("read feed statistics", err)
	}
}
