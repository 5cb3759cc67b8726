package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Player1Name     string        `env:"CONNECT4_PLAYER1_NAME" envDefault:"Player 1"`
	Player2Name     string        `env:"CONNECT4_PLAYER2_NAME" envDefault:"Player 2"`
	Locale          string        `env:"CONNECT4_LOCALE" envDefault:"en-US"`
	AllowRematch    bool          `env:"CONNECT4_ALLOW_REMATCH" envDefault:"true"`
	LogLevel        string        `env:"CONNECT4_LOG_LEVEL" envDefault:"warn"`
	LogFormat       string        `env:"CONNECT4_LOG_FORMAT" envDefault:"text"`
	SessionTTL      time.Duration `env:"CONNECT4_SESSION_TTL" envDefault:"1h"`
	StaleSessionTTL time.Duration `env:"CONNECT4_STALE_SESSION_TTL" envDefault:"24h"`
	CleanupInterval time.Duration `env:"CONNECT4_CLEANUP_INTERVAL" envDefault:"10m"`
}

// LoadDotEnv loads .env from the working directory or its parent. A missing
// file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			slog.Debug("no .env file found")
		}
	}
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Player1Name == "" || c.Player2Name == "" {
		return fmt.Errorf("player names must not be empty")
	}
	if c.Player1Name == c.Player2Name {
		return fmt.Errorf("player names must differ, both are %q", c.Player1Name)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %s", c.CleanupInterval)
	}
	if c.SessionTTL <= 0 || c.StaleSessionTTL <= 0 {
		return fmt.Errorf("session ttls must be positive, got %s and %s", c.SessionTTL, c.StaleSessionTTL)
	}
	return nil
}
