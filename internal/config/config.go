// Package config loads the service configuration from the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variable names.
const (
	EnvAPIKey      = "GEM_API_KEY"
	EnvDatabaseURL = "DB_CONNECTION_STRING"
	EnvPort        = "PORT"
	EnvModel       = "GEMINI_MODEL"
	EnvLogLevel    = "LOG_LEVEL"
)

// Defaults for the optional settings.
const (
	DefaultPort     = "8080"
	DefaultModel    = "gemini-2.5-flash"
	DefaultLogLevel = "info"
)

// Config is the portfolio service configuration.
type Config struct {
	// APIKey authenticates against the Gemini API.
	APIKey string `validate:"required"`
	// DatabaseURL is the Postgres connection string for the project store.
	DatabaseURL string `validate:"required"`
	Port        string `validate:"required,numeric"`
	Model       string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn error"`
}

// envNames maps struct fields to the variable that feeds them, for error messages.
var envNames = map[string]string{
	"APIKey":      EnvAPIKey,
	"DatabaseURL": EnvDatabaseURL,
	"Port":        EnvPort,
	"Model":       EnvModel,
	"LogLevel":    EnvLogLevel,
}

// Load reads the configuration from the environment and validates it.
// A missing API key or database URL is a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:      os.Getenv(EnvAPIKey),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		Port:        getenv(EnvPort, DefaultPort),
		Model:       getenv(EnvModel, DefaultModel),
		LogLevel:    strings.ToLower(getenv(EnvLogLevel, DefaultLogLevel)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and names the offending variables.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config error: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := envNames[fe.Field()]
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is not set", name))
		default:
			problems = append(problems, fmt.Sprintf("%s has invalid value %q", name, fe.Value()))
		}
	}
	return fmt.Errorf("config error: %s", strings.Join(problems, "; "))
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
