package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the timesheet service.
// Environment variables are parsed from the CLOCKBOOK_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage backend: memory, sqlite or postgres
	DBDriver    string `envconfig:"DB_DRIVER" default:"memory"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"clockbook.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Optional static API key; when empty, requests are not authenticated.
	APIKey string `envconfig:"API_KEY" default:""`

	// Health monitoring
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates the storage driver selection.
func (c *Config) ResolveDefaults() error {
	allowedDB := map[string]bool{"memory": true, "sqlite": true, "postgres": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: CLOCKBOOK_HTTP_PORT, CLOCKBOOK_DB_DRIVER.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CLOCKBOOK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("port", cfg.HTTPPort).
		Bool("api_key_present", cfg.APIKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
