package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Sources  SourcesConfig
	Database DatabaseConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SourcesConfig holds configuration for the two scrape sources
type SourcesConfig struct {
	IncidecoderBaseURL string        `mapstructure:"incidecoder_base_url"`
	CoupangBaseURL     string        `mapstructure:"coupang_base_url"`
	UserAgent          string        `mapstructure:"user_agent"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// DatabaseConfig holds catalog database configuration
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cosmetic-compare/")

	// Environment variable settings
	v.SetEnvPrefix("COSMETIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "3002")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Scrape source defaults
	v.SetDefault("sources.incidecoder_base_url", "https://incidecoder.com")
	v.SetDefault("sources.coupang_base_url", "https://www.coupang.com")
	v.SetDefault("sources.user_agent", "Mozilla/5.0")
	v.SetDefault("sources.timeout", "15s")

	// Database defaults. The URL has no usable default but must be
	// registered for AutomaticEnv to pick it up during Unmarshal.
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 4)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Database.URL == "" {
		return fmt.Errorf("catalog database URL is required (set COSMETIC_DATABASE_URL)")
	}

	if config.Sources.IncidecoderBaseURL == "" || config.Sources.CoupangBaseURL == "" {
		return fmt.Errorf("scrape source base URLs must not be empty")
	}

	if config.Sources.Timeout <= 0 {
		return fmt.Errorf("sources timeout must be positive, got: %s", config.Sources.Timeout)
	}

	return nil
}
