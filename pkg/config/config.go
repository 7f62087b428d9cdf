package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	apperrors "github.com/killallgit/podfeed-api/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultConfigFile is read when no --config flag is given
const DefaultConfigFile = "./config/settings.yaml"

// IDPlaceholder must appear in feed.url_template
const IDPlaceholder = "{id}"

var (
	once    sync.Once
	initErr error

	// ConfigFile is the YAML file Init reads; set from the --config flag
	ConfigFile = DefaultConfigFile
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment overrides, e.g. PODFEED_SERVER_PORT
		viper.SetEnvPrefix("PODFEED")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean(ConfigFile)
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !os.IsNotExist(err) && !errors.As(err, &notFound) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", port))
	}

	if !strings.Contains(viper.GetString("feed.url_template"), IDPlaceholder) {
		return apperrors.ConfigError("feed.url_template", "must contain "+IDPlaceholder)
	}

	if viper.GetBool("database.enabled") && viper.GetString("database.path") == "" {
		return apperrors.ConfigError("database.path", "required when the database is enabled")
	}

	switch format := viper.GetString("logging.format"); format {
	case "json", "console":
	default:
		return apperrors.ConfigError("logging.format", fmt.Sprintf("unknown format %q", format))
	}

	// Auto-correct a burst the limiter could never satisfy
	if viper.GetInt("rate_limiting.burst") <= 0 {
		viper.Set("rate_limiting.burst", 1)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", c.Server.Port))
	}

	if !strings.Contains(c.Feed.URLTemplate, IDPlaceholder) {
		return apperrors.ConfigError("feed.url_template", "must contain "+IDPlaceholder)
	}

	if c.Database.Enabled && c.Database.Path == "" {
		return apperrors.ConfigError("database.path", "required when the database is enabled")
	}

	if c.Feed.Timeout < 0 {
		return apperrors.ConfigError("feed.timeout", fmt.Sprintf("must not be negative, got %s", c.Feed.Timeout))
	}

	if c.RateLimiting.Burst <= 0 {
		c.RateLimiting.Burst = 1
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Feed source defaults
	viper.SetDefault("feed.url_template", "https://www.dr.dk/mu/feed/"+IDPlaceholder+".xml?format=podcast")
	viper.SetDefault("feed.timeout", 30*time.Second)
	viper.SetDefault("feed.user_agent", "PodfeedAPI/1.0")
	viper.SetDefault("feed.max_body_bytes", 0)

	// Database defaults
	viper.SetDefault("database.enabled", true)
	viper.SetDefault("database.path", "./data/podfeed.db")
	viper.SetDefault("database.verbose", false)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 10.0)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
