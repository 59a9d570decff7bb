package config

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"console-playground/internal/console"
	"console-playground/internal/logging"
	"console-playground/internal/metrics"
	"console-playground/internal/service"
	"console-playground/internal/storage"
)

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewLogger() (*zap.Logger, error) {
	if err := logging.Init(c.LogLevel, c.LogFormat); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logging.Logger, nil
}

// ------------------------------------------------------------------------------------------------------
// NewMetrics returns a recorder on a private registry; the registry is gathered for the exit summary
func (c *Config) NewMetrics() (*metrics.Recorder, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return metrics.New(reg), reg
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewMessageStore() storage.MessageStore {
	return storage.NewMemoryStore(c.ChatMaxExchanges)
}

// ------------------------------------------------------------------------------------------------------
// NewRNG seeds from HANGMAN_SEED, or from the clock when it is 0
func (c *Config) NewRNG() *rand.Rand {
	seed := c.HangmanSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewChatService(recorder *metrics.Recorder, logger *zap.Logger) service.ChatService {
	messageStore := c.NewMessageStore()

	return service.NewChatService(messageStore, recorder, logger)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewHangmanService(recorder *metrics.Recorder, logger *zap.Logger) service.HangmanService {
	return service.NewHangmanService(c.NewRNG(), recorder, logger)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewConsole(in io.Reader, out io.Writer, logger *zap.Logger) *console.Console {
	return console.New(in, out, logger)
}
