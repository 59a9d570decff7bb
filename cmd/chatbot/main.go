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
	// Load configuration
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

	logger.Info("Starting chatbot",
		zap.Int("max_exchanges", cfg.ChatMaxExchanges),
	)

	// Stop waiting for input on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recorder, reg := cfg.NewMetrics()
	chatService := cfg.NewChatService(recorder, logger)

	term := cfg.NewConsole(os.Stdin, os.Stdout, logger)
	defer term.Close()

	err = console.RunChat(ctx, term, chatService, logger)
	if err != nil && !console.Finished(err) {
		logger.Error("Chat session failed", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}

	logger.Debug("Chat session summary",
		zap.Int("exchanges", chatService.Exchanges()),
		zap.Int("transcript_messages", len(chatService.Transcript())),
	)
	metrics.LogSnapshot(logger, reg)
}
