package main

import (
	"github.com/sablemoor/RitualBot_Go/internal/config"
	"github.com/sablemoor/RitualBot_Go/internal/handler"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
)

const serviceName = "ritual-bot"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev; the attribute is noise in aggregated logs.
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		handler.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
