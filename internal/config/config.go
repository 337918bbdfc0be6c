// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/tatianab/treasure-hunter/internal/models"
)

const (
	UITerminal = "tui"
	UIConsole  = "console"

	DefaultLogFile = "treasure-hunter.log"
)

// Config holds the application configuration.
type Config struct {
	UI            string `validate:"oneof=tui console"`
	Seed          int64
	LogLevel      string `validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat     string `validate:"omitempty,oneof=text json"`
	LogFile       string `validate:"required"`
	TranscriptDir string
	OTLPEndpoint  string `validate:"omitempty,url"`
	GeminiAPIKey  string
}

var validate = validator.New()

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		UI:            getEnv("TREASURE_UI", UITerminal),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogFile:       getEnv("LOG_FILE", DefaultLogFile),
		TranscriptDir: models.DefaultTranscriptDir,
		OTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
	}
	// An explicitly empty TRANSCRIPT_DIR turns transcripts off.
	if dir, set := os.LookupEnv("TRANSCRIPT_DIR"); set {
		cfg.TranscriptDir = dir
	}

	if raw := os.Getenv("TREASURE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TREASURE_SEED must be an integer: %w", err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings, including any overrides applied after Load.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// RequireGeminiKey fails unless a Gemini API key is configured.
func (c *Config) RequireGeminiKey() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return nil
}

// TelemetryEnabled reports whether an OTLP collector is configured.
func (c *Config) TelemetryEnabled() bool {
	return c.OTLPEndpoint != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
