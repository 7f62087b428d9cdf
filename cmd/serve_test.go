package cmd

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/killallgit/podfeed-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServeCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "serve command with help",
			args:           []string{"serve", "--help"},
			expectedOutput: "Start the Podfeed API server",
		},
		{
			name:    "serve command with invalid port",
			args:    []string{"serve", "--port", "invalid"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, output, tt.expectedOutput)
		})
	}
}

func TestServeCommand_GracefulShutdown(t *testing.T) {
	t.Setenv("PODFEED_DATABASE_PATH", filepath.Join(t.TempDir(), "stats.db"))

	// A previous run leaves serve with a context of its own
	_, err := execute(t, "serve", "--help")
	require.NoError(t, err)

	for _, run := range []string{"first run", "second run"} {
		t.Run(run, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				_, err := executeContext(t, ctx, "serve", "--host", "127.0.0.1", "--port", "0")
				done <- err
			}()

			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(15 * time.Second):
				t.Fatal("serve did not stop after its context was cancelled")
			}
		})
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	assert.NotNil(t, serveCmd.Flags().Lookup("port"), "Expected port flag to be registered")
	assert.NotNil(t, serveCmd.Flags().Lookup("host"), "Expected host flag to be registered")
}

func TestBuildDependencies(t *testing.T) {
	t.Run("statistics enabled", func(t *testing.T) {
		cfg := &config.Config{
			Database: config.DatabaseConfig{Enabled: true, Path: filepath.Join(t.TempDir(), "stats.db")},
		}

		deps, cleanup, err := buildDependencies(cfg, zap.NewNop())
		require.NoError(t, err)
		defer cleanup()

		require.NotNil(t, deps.DB)
		assert.NoError(t, deps.DB.HealthCheck())
		assert.True(t, deps.DB.Migrator().HasTable("feed_stats"))
		assert.NotNil(t, deps.PodcastService)
		assert.Equal(t, Version, deps.Version)
	})

	t.Run("statistics disabled", func(t *testing.T) {
		cfg := &config.Config{Database: config.DatabaseConfig{Enabled: false}}

		deps, cleanup, err := buildDependencies(cfg, zap.NewNop())
		require.NoError(t, err)
		defer cleanup()

		assert.Nil(t, deps.DB)
		assert.NotNil(t, deps.PodcastService)
	})

	t.Run("missing database path", func(t *testing.T) {
		cfg := &config.Config{Database: config.DatabaseConfig{Enabled: true}}

		_, _, err := buildDependencies(cfg, zap.NewNop())
		assert.Error(t, err)
	})
}
