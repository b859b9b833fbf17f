package main

import (
	"os"
	"os/signal"
	"syscall"

	"cadastro/internal/app"
	"cadastro/internal/config"
	"cadastro/internal/logging"

	zlog "github.com/rs/zerolog/log"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.Setup(cfg)

	// --- Initialize Fiber App ---
	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create app")
	}

	// --- Start HTTP Server ---
	logger.Info().Str("port", cfg.HTTPPort).Str("env", cfg.Env).Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Listen(cfg.HTTPPort); err != nil {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	logger.Info().Msg("shutting down server")

	if err := application.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.Error().Err(err).Msg("error during shutdown")
	}
	logger.Info().Msg("server gracefully stopped")
}
