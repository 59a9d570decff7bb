package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	apperror "console-playground/internal/error"
)

// Config holds all configuration for the application.
// None of it changes what the games print; it only tunes diagnostics.
type Config struct {
	LogLevel         string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"json"`
	ChatMaxExchanges int    `env:"CHAT_MAX_EXCHANGES" envDefault:"20"`
	HangmanSeed      int64  `env:"HANGMAN_SEED" envDefault:"0"`
}

// ------------------------------------------------------------------------------------------------------
// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperror.NewConfigError("failed to parse environment", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return apperror.NewConfigError(fmt.Sprintf("LOG_LEVEL %q is not a log level", c.LogLevel), apperror.ErrInvalidSetting)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return apperror.NewConfigError(fmt.Sprintf("LOG_FORMAT %q must be json or console", c.LogFormat), apperror.ErrInvalidSetting)
	}

	if c.ChatMaxExchanges < 0 {
		return apperror.NewConfigError("CHAT_MAX_EXCHANGES must not be negative", apperror.ErrInvalidSetting)
	}

	return nil
}
