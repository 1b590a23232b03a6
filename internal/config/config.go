package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is used when no endpoint is configured anywhere.
const DefaultBaseURL = "http://localhost:8000"

const (
	envBaseURL = "HOMESCOUT_BASE_URL"
	envAPIKey  = "HOMESCOUT_API_KEY"
)

// Config carries everything the predictor client needs to reach the backend.
type Config struct {
	BaseURL string
	APIKey  string
}

// Load assembles the runtime configuration. Flag values win over process
// environment variables, which win over entries in the .env file. When
// envFile is empty a .env in the working directory is loaded best effort;
// an explicitly named file must exist.
func Load(flagBaseURL, flagAPIKey, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := Config{BaseURL: DefaultBaseURL}
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envAPIKey); v != "" {
		cfg.APIKey = v
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	return cfg, nil
}
