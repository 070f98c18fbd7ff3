package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls where the client talks and how long it waits.
type Config struct {
	APIBaseURL     string        `yaml:"api_base_url"`
	TokenFile      string        `yaml:"token_file"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Plaintext localhost is the collaborator's development host.
const defaultBaseURL = "http://localhost:8000"

func defaults() *Config {
	return &Config{
		APIBaseURL:     defaultBaseURL,
		RequestTimeout: 30 * time.Second,
	}
}

// Load reads the YAML config at path (missing file is fine, defaults apply)
// and then applies environment overrides. Precedence: env > file > defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.APIBaseURL = getEnv("TIMEPIECE_API_URL", cfg.APIBaseURL)
	cfg.TokenFile = getEnv("TIMEPIECE_TOKEN_FILE", cfg.TokenFile)
	if v := os.Getenv("TIMEPIECE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse TIMEPIECE_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	if cfg.APIBaseURL == "" {
		return nil, errors.New("api_base_url must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
