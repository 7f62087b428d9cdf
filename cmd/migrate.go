package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/podfeed-api/internal/database"
	"github.com/killallgit/podfeed-api/internal/models"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Create or update the fetch statistics tables.

Migrations are applied with GORM AutoMigrate; running them again is a no-op
when the schema is current. The server applies them on startup as well.

Available subcommands:
  status  - Show whether the tables exist and how many podcasts are tracked`,
	RunE: runMigrate,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display whether the fetch statistics table exists and how many
podcast IDs it tracks.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().String("path", "", "database path (overrides config)")
}

func openDatabase(cmd *cobra.Command, migrate bool) (*database.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, err
	}

	if path, _ := cmd.Flags().GetString("path"); path != "" {
		cfg.Database.Path = path
	}
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database path is not configured")
	}

	if migrate {
		return database.InitializeWithMigrations(cfg.Database, logger)
	}
	return database.Initialize(cfg.Database.Path, cfg.Database.Verbose, logger)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd, true)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd, false)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	stat := &models.FeedStat{}
	if !db.Migrator().HasTable(stat) {
		fmt.Fprintf(out, "%-12s pending\n", stat.TableName())
		return nil
	}

	var count int64
	if err := db.Model(stat).Count(&count).Error; err != nil {
		return fmt.Errorf("counting %s: %w", stat.TableName(), err)
	}
	fmt.Fprintf(out, "%-12s applied (%d podcasts tracked)\n", stat.TableName(), count)
	return nil
}
