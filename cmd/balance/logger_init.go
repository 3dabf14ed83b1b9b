package main

import (
	"github.com/osse101/AmmoBalance_Go/internal/config"
	"github.com/osse101/AmmoBalance_Go/internal/logger"
)

// initLogger initializes the logger using the application configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.Environment))
}
