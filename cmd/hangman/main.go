package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"console-playground/internal/config"
	"console-playground/internal/console"
	"console-playground/internal/logging"
	"console-playground/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	logger.Info("Starting hangman", zap.Int64("seed", cfg.HangmanSeed))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recorder, reg := cfg.NewMetrics()
	games := cfg.NewHangmanService(recorder, logger)

	term := cfg.NewConsole(os.Stdin, os.Stdout, logger)
	defer term.Close()

	if err := console.RunHangman(ctx, term, games, logger); err != nil && !console.Finished(err) {
		logger.Error("Hangman session failed", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}

	metrics.LogSnapshot(logger, reg)
}
