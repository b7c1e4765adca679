package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("COSMETIC_SERVER_PORT")
		os.Unsetenv("COSMETIC_SERVER_ENVIRONMENT")
		os.Unsetenv("COSMETIC_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("COSMETIC_SOURCES_INCIDECODER_BASE_URL")
		os.Unsetenv("COSMETIC_SOURCES_COUPANG_BASE_URL")
		os.Unsetenv("COSMETIC_SOURCES_USER_AGENT")
		os.Unsetenv("COSMETIC_SOURCES_TIMEOUT")
		os.Unsetenv("COSMETIC_DATABASE_URL")
		os.Unsetenv("COSMETIC_DATABASE_MAX_CONNS")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required database URL
		os.Setenv("COSMETIC_DATABASE_URL", "postgres://localhost:5432/cosmeticdb")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "3002" {
			t.Errorf("Server.Port = %s, want 3002", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Sources.IncidecoderBaseURL != "https://incidecoder.com" {
			t.Errorf("Sources.IncidecoderBaseURL = %s, want https://incidecoder.com", cfg.Sources.IncidecoderBaseURL)
		}
		if cfg.Sources.CoupangBaseURL != "https://www.coupang.com" {
			t.Errorf("Sources.CoupangBaseURL = %s, want https://www.coupang.com", cfg.Sources.CoupangBaseURL)
		}
		if cfg.Sources.UserAgent != "Mozilla/5.0" {
			t.Errorf("Sources.UserAgent = %s, want Mozilla/5.0", cfg.Sources.UserAgent)
		}
		if cfg.Sources.Timeout != 15*time.Second {
			t.Errorf("Sources.Timeout = %v, want 15s", cfg.Sources.Timeout)
		}
		if cfg.Database.MaxConns != 4 {
			t.Errorf("Database.MaxConns = %d, want 4", cfg.Database.MaxConns)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("COSMETIC_SERVER_PORT", "9090")
		os.Setenv("COSMETIC_SERVER_ENVIRONMENT", "production")
		os.Setenv("COSMETIC_SOURCES_INCIDECODER_BASE_URL", "http://localhost:8081")
		os.Setenv("COSMETIC_SOURCES_COUPANG_BASE_URL", "http://localhost:8082")
		os.Setenv("COSMETIC_SOURCES_TIMEOUT", "5s")
		os.Setenv("COSMETIC_DATABASE_URL", "postgres://db.internal:5432/catalog")
		os.Setenv("COSMETIC_DATABASE_MAX_CONNS", "16")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Sources.IncidecoderBaseURL != "http://localhost:8081" {
			t.Errorf("Sources.IncidecoderBaseURL = %s, want http://localhost:8081", cfg.Sources.IncidecoderBaseURL)
		}
		if cfg.Sources.Timeout != 5*time.Second {
			t.Errorf("Sources.Timeout = %v, want 5s", cfg.Sources.Timeout)
		}
		if cfg.Database.URL != "postgres://db.internal:5432/catalog" {
			t.Errorf("Database.URL = %s, want postgres://db.internal:5432/catalog", cfg.Database.URL)
		}
		if cfg.Database.MaxConns != 16 {
			t.Errorf("Database.MaxConns = %d, want 16", cfg.Database.MaxConns)
		}
	})

	t.Run("fails when database URL is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing database URL")
		}
	})

	t.Run("fails for non-positive sources timeout", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("COSMETIC_DATABASE_URL", "postgres://localhost:5432/cosmeticdb")
		os.Setenv("COSMETIC_SOURCES_TIMEOUT", "0s")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for zero timeout")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "3002", Environment: "development"},
			Sources: SourcesConfig{
				IncidecoderBaseURL: "https://incidecoder.com",
				CoupangBaseURL:     "https://www.coupang.com",
				UserAgent:          "Mozilla/5.0",
				Timeout:            15 * time.Second,
			},
			Database: DatabaseConfig{URL: "postgres://localhost:5432/cosmeticdb", MaxConns: 4},
		}
	}

	t.Run("accepts a complete config", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("rejects empty database URL", func(t *testing.T) {
		cfg := valid()
		cfg.Database.URL = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("rejects empty source base URLs", func(t *testing.T) {
		cfg := valid()
		cfg.Sources.CoupangBaseURL = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})
}
