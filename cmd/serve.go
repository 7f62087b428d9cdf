package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/podfeed-api/api"
	"github.com/killallgit/podfeed-api/api/types"
	"github.com/killallgit/podfeed-api/internal/database"
	"github.com/killallgit/podfeed-api/internal/feed"
	"github.com/killallgit/podfeed-api/internal/services/podcasts"
	"github.com/killallgit/podfeed-api/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Podfeed API server with the configured settings.

The server answers GET /podcasts/{id} by reading the podcast's feed from
the configured feed source.

Example:
  podfeed-api serve
  podfeed-api serve --port 9090
  podfeed-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serverHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = serverPort
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	deps, cleanup, err := buildDependencies(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	server := api.NewServer(cfg, deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to receive server errors
	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	logger.Info("server started",
		zap.String("address", server.Addr()),
		zap.String("feed_url_template", cfg.Feed.URLTemplate),
		zap.Bool("fetch_stats", deps.DB != nil),
	)

	// Wait for interrupt signal or server error
	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("server gracefully stopped")
	return nil
}

// buildDependencies wires the feed source, the fetch statistics store and
// the podcast service. The returned cleanup closes the database.
func buildDependencies(cfg *config.Config, logger *zap.Logger) (*types.Dependencies, func(), error) {
	fetcher := newFetcher(cfg)

	deps := &types.Dependencies{
		Logger:      logger,
		Version:     Version,
		FeedTimeout: cfg.Feed.Timeout,
	}
	cleanup := func() {}

	var stats podcasts.StatsRepository
	if cfg.Database.Enabled {
		db, err := database.InitializeWithMigrations(cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing database: %w", err)
		}
		deps.DB = db
		stats = podcasts.NewStatsRepository(db.DB)
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close database", zap.Error(err))
			}
		}
	}

	deps.PodcastService = podcasts.NewService(podcasts.NewRepository(fetcher), stats, logger)
	return deps, cleanup, nil
}

func newFetcher(cfg *config.Config) *feed.Fetcher {
	return feed.NewFetcher(feed.FetcherOptions{
		URLTemplate:  cfg.Feed.URLTemplate,
		Timeout:      cfg.Feed.Timeout,
		UserAgent:    cfg.Feed.UserAgent,
		MaxBodyBytes: cfg.Feed.MaxBodyBytes,
	}, nil)
}
