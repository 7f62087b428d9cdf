package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/podfeed-api/pkg/config"
	"github.com/killallgit/podfeed-api/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podfeed-api",
	Short: "Podfeed API server",
	Long: `Podfeed API - podcast metadata and episodes read from RSS feeds

The API looks up a podcast by ID, streams its RSS feed from the configured
feed source and returns the podcast with its episodes as JSON.

Features:
  • Publication date range and episode limit filters
  • Feeds are read only as far as the filter needs
  • Per-podcast fetch statistics stored in SQLite`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(setConfigFile)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigFile, "config file")
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// setConfigFile points the config package at the --config file
func setConfigFile() {
	config.ConfigFile = configFile
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only by commands that need config
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}
	return config.GetConfig()
}

// newLogger builds the process logger. --log-level and --json-logs win over
// the logging section of the config when given.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Logging.Level
	format := cfg.Logging.Format

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		level, _ = flags.GetString("log-level")
	}
	if flags.Changed("json-logs") {
		if jsonLogs, _ := flags.GetBool("json-logs"); jsonLogs {
			format = logging.FormatJSON
		} else {
			format = logging.FormatConsole
		}
	}

	return logging.New(level, format)
}
