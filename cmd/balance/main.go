package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/osse101/AmmoBalance_Go/internal/config"
	"github.com/osse101/AmmoBalance_Go/internal/logger"
)

func main() {
	// Until the environment is read, log with defaults.
	logger.InitLogger(logger.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("Balancing failed", "error", err)
		os.Exit(1)
	}
}
