// Package config reads alduin's runtime configuration from the environment.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// EnvAPIKey is the environment variable holding the Anthropic API key.
const EnvAPIKey = "ANTHROPIC_API_KEY"

// ErrMissingAPIKey is returned by Load when no API key is configured.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY environment variable is not set")

// Config holds everything alduin reads from the environment.
type Config struct {
	APIKey string
}

// Load folds a .env file from the working directory into the environment
// when one exists (already-set variables win), then reads the API key.
func Load() (*Config, error) {
	_ = godotenv.Load()

	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: key}, nil
}
