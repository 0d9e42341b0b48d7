package main

import (
	"os"

	"NewsVerifier/internal/app"
	"NewsVerifier/internal/config"
	"NewsVerifier/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	if err := application.Run(); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
