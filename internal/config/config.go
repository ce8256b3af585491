package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	SaveFile    string `env:"BUDGET_SAVE_FILE" envDefault:"savegame.txt"`
	JournalPath string `env:"BUDGET_JOURNAL_PATH" envDefault:"runs.db"`
	// Seed fixes the event order; 0 seeds from the clock.
	Seed     uint64 `env:"BUDGET_SEED" envDefault:"0"`
	LogFile  string `env:"BUDGET_LOG_FILE" envDefault:"budget.log"`
	LogLevel string `env:"BUDGET_LOG_LEVEL" envDefault:"info"`
	// GeminiAPIKey enables narration when set.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// LoadConfig reads an optional .env file and then the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return ParseEnv()
}

// ParseEnv loads configuration from environment variables only.
func ParseEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// NarrationEnabled reports whether a Gemini key was provided.
func (c *Config) NarrationEnabled() bool {
	return c.GeminiAPIKey != ""
}
