package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	apperrors "github.com/killallgit/podfeed-api/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reset clears package and viper state so Init can run again
func reset(t *testing.T, configFile string) {
	t.Helper()
	viper.Reset()
	once = sync.Once{}
	initErr = nil
	ConfigFile = configFile
	t.Cleanup(func() {
		viper.Reset()
		once = sync.Once{}
		initErr = nil
		ConfigFile = DefaultConfigFile
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no config file
		env     map[string]string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "load from settings file",
			content: `
server:
  host: "127.0.0.1"
  port: 8081
feed:
  url_template: "https://feeds.example.com/{id}.rss"
  timeout: 5s
database:
  enabled: false
`,
			check: func(t *testing.T) {
				assert.Equal(t, 8081, GetInt("server.port"))
				assert.Equal(t, "https://feeds.example.com/{id}.rss", GetString("feed.url_template"))
				assert.Equal(t, 5*time.Second, GetDuration("feed.timeout"))
				assert.False(t, GetBool("database.enabled"))
			},
		},
		{
			name: "environment variable override",
			content: `
server:
  port: 8081
`,
			env: map[string]string{"PODFEED_SERVER_PORT": "9090"},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
			},
		},
		{
			name: "missing config file uses defaults",
			check: func(t *testing.T) {
				assert.Equal(t, 8080, GetInt("server.port"))
				assert.Equal(t, "https://www.dr.dk/mu/feed/{id}.xml?format=podcast", GetString("feed.url_template"))
				assert.Equal(t, 30*time.Second, GetDuration("feed.timeout"))
				assert.Equal(t, "info", GetString("logging.level"))
			},
		},
		{
			name: "template without placeholder",
			content: `
feed:
  url_template: "https://feeds.example.com/static.rss"
`,
			wantErr: true,
		},
		{
			name: "invalid port",
			content: `
server:
  port: 70000
`,
			wantErr: true,
		},
		{
			name: "invalid logging format",
			content: `
logging:
  format: "xml"
`,
			wantErr: true,
		},
		{
			name: "non-positive burst is corrected",
			content: `
rate_limiting:
  burst: 0
`,
			check: func(t *testing.T) {
				assert.Equal(t, 1, GetInt("rate_limiting.burst"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.content != "" {
				path = writeConfig(t, tt.content)
			}
			reset(t, path)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Init()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestInit_UnreadableFile(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")
	reset(t, path)

	err := Init()
	assert.Error(t, err)
}

func TestGetConfig(t *testing.T) {
	path := writeConfig(t, `
feed:
  user_agent: "test-agent"
  max_body_bytes: 1024
security:
  cors_origins: ["https://a.example.com", "https://b.example.com"]
rate_limiting:
  requests_per_second: 2.5
`)
	reset(t, path)
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-agent", cfg.Feed.UserAgent)
	assert.Equal(t, int64(1024), cfg.Feed.MaxBodyBytes)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Security.CORSOrigins)
	assert.Equal(t, 2.5, cfg.RateLimiting.RequestsPerSecond)
	assert.Equal(t, 20, cfg.RateLimiting.Burst)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Database.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Host: "localhost", Port: 8080},
			Feed:   FeedConfig{URLTemplate: "https://example.com/{id}.xml", Timeout: time.Second},
			Database: DatabaseConfig{
				Enabled: true,
				Path:    "./test.db",
			},
			RateLimiting: RateLimitConfig{Burst: 5},
		}
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantKey string
	}{
		{name: "valid config", modify: func(c *Config) {}},
		{name: "port zero", modify: func(c *Config) { c.Server.Port = 0 }, wantKey: "server.port"},
		{name: "port too large", modify: func(c *Config) { c.Server.Port = 65536 }, wantKey: "server.port"},
		{name: "template without placeholder", modify: func(c *Config) { c.Feed.URLTemplate = "https://example.com/feed.xml" }, wantKey: "feed.url_template"},
		{name: "database enabled without path", modify: func(c *Config) { c.Database.Path = "" }, wantKey: "database.path"},
		{name: "database disabled without path", modify: func(c *Config) { c.Database = DatabaseConfig{} }},
		{name: "negative timeout", modify: func(c *Config) { c.Feed.Timeout = -time.Second }, wantKey: "feed.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr), "got %v", err)
			assert.Equal(t, apperrors.ErrCodeConfigInvalid, appErr.Code)
			assert.Equal(t, tt.wantKey, appErr.Details["key"])
		})
	}
}

func TestInit_InvalidConfigIsConfigError(t *testing.T) {
	path := writeConfig(t, `
feed:
  url_template: "https://example.com/feed.xml"
`)
	reset(t, path)

	err := Init()
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "got %v", err)
	assert.Equal(t, apperrors.ErrCodeConfigInvalid, appErr.Code)
	assert.Equal(t, "feed.url_template", appErr.Details["key"])
}

func TestConfig_Validate_CorrectsBurst(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Feed:   FeedConfig{URLTemplate: "{id}"},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.RateLimiting.Burst)
}
