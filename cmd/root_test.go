package cmd

import (
	"context"
	"testing"

	"github.com/killallgit/podfeed-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "root command without args shows help",
			args:           []string{},
			expectedOutput: "Podfeed API",
		},
		{
			name:           "root command with --help",
			args:           []string{"--help"},
			expectedOutput: "Available Commands:",
		},
		{
			name:    "root command with invalid flag",
			args:    []string{"--invalid-flag"},
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

func TestLogFlags(t *testing.T) {
	cmd := NewRootCmd()

	logFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logFlag, "Expected log-level flag to be registered")
	assert.Equal(t, "info", logFlag.DefValue)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("json-logs"), "Expected json-logs flag to be registered")

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, config.DefaultConfigFile, configFlag.DefValue)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		level   string
		format  string
		wantErr bool
	}{
		{name: "config values", level: "warn", format: "console"},
		{name: "flag overrides level", args: []string{"--log-level", "debug"}, level: "bogus", format: "json"},
		{name: "json-logs overrides format", args: []string{"--json-logs"}, level: "info", format: "bogus"},
		{name: "invalid config level", level: "bogus", format: "json", wantErr: true},
		{name: "invalid flag level", args: []string{"--log-level", "loud"}, level: "info", format: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			resetCommand(cmd, context.Background())
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg := &config.Config{Logging: config.LoggingConfig{Level: tt.level, Format: tt.format}}
			logger, err := newLogger(cmd, cfg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}
