package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/killallgit/podfeed-api/api/types"
	"github.com/killallgit/podfeed-api/internal/services/podcasts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fetchCmd reads one podcast feed and prints it
var fetchCmd = &cobra.Command{
	Use:   "fetch <podcast-id>",
	Short: "Fetch a podcast and print it as JSON",
	Long: `Fetch a podcast from the configured feed source and print the same
JSON the API returns for GET /podcasts/{id}.

Dates accept the formats of the API query parameters.

Example:
  podfeed-api fetch genstart
  podfeed-api fetch genstart --limit 3
  podfeed-api fetch genstart --start 2020-01-01 --end 2020-01-31T23:59:59+01:00`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("start", "", "earliest publication date, inclusive")
	fetchCmd.Flags().String("end", "", "latest publication date, inclusive")
	fetchCmd.Flags().Int("limit", 0, "maximum number of episodes")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	query := types.PodcastFilterQuery{}
	query.PublicationDateStart, _ = cmd.Flags().GetString("start")
	query.PublicationDateEnd, _ = cmd.Flags().GetString("end")
	if cmd.Flags().Changed("limit") {
		limit, _ := cmd.Flags().GetInt("limit")
		query.Limit = &limit
	}

	filter, err := query.ToFilter()
	if err != nil {
		return err
	}

	service := podcasts.NewService(podcasts.NewRepository(newFetcher(cfg)), nil, logger)

	podcast, err := service.GetPodcast(cmd.Context(), args[0], filter)
	if err != nil {
		if podcasts.IsNotFound(err) {
			return fmt.Errorf("podcast %q not found", args[0])
		}
		return err
	}

	logger.Debug("podcast fetched", zap.String("podcast_id", args[0]), zap.Int("episodes", len(podcast.Episodes)))

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(types.FromModelPodcast(podcast))
}
