package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
	}{
		{
			name:           "migrate command with help",
			args:           []string{"migrate", "--help"},
			expectedOutput: "Create or update the fetch statistics tables",
		},
		{
			name:           "migrate status subcommand",
			args:           []string{"migrate", "status", "--help"},
			expectedOutput: "Display whether the fetch statistics table exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)

			require.NoError(t, err)
			assert.Contains(t, output, tt.expectedOutput)
		})
	}
}

func TestMigrateCommand_AppliesMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stats.db")

	output, err := execute(t, "migrate", "status", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, output, "feed_stats   pending")

	output, err = execute(t, "migrate", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Migrations applied")

	output, err = execute(t, "migrate", "status", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, output, "feed_stats   applied (0 podcasts tracked)")
}

func TestMigrateCommandSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	migrateCmd, _, err := cmd.Find([]string{"migrate"})
	require.NoError(t, err)

	var names []string
	for _, child := range migrateCmd.Commands() {
		names = append(names, child.Name())
	}
	assert.Contains(t, names, "status")
}
