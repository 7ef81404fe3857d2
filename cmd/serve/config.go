package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/harborai/oxbridge/model"
	"github.com/harborai/oxbridge/oxp"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// Server
	Port     string
	LogLevel string // debug, info, warn, error

	// Remote execution service
	BearerToken string
	APIKey      string
	BaseURL     string

	// Agent assembly
	Model string

	// How long a tool call waits for an authorization acknowledgment.
	InterruptTimeout time.Duration
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		Port:             getEnvOrDefault("OXBRIDGE_PORT", "8000"),
		LogLevel:         getEnvOrDefault("OXBRIDGE_LOG_LEVEL", "info"),
		BearerToken:      os.Getenv("OXP_BEARER_TOKEN"),
		APIKey:           os.Getenv("OXP_API_KEY"),
		BaseURL:          os.Getenv("OXP_BASE_URL"),
		Model:            getEnvOrDefault("OXBRIDGE_MODEL", model.DefaultModel),
		InterruptTimeout: getEnvDurationOrDefault("OXBRIDGE_INTERRUPT_TIMEOUT", 5*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.BearerToken == "" && c.APIKey == "" {
		return fmt.Errorf("OXP_BEARER_TOKEN or OXP_API_KEY is required")
	}
	return nil
}

// OXPConfig returns the remote service client configuration.
func (c *Config) OXPConfig() oxp.Config {
	return oxp.Config{
		BearerToken: c.BearerToken,
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
	}
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
