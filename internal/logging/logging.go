// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"cadastro/internal/config"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Setup builds a logger from the config, installs it as the global
// logger and returns it.
func Setup(cfg *config.Config) zerolog.Logger {
	return setup(cfg, os.Stdout)
}

func setup(cfg *config.Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("app", cfg.AppName).
		Logger()
	zlog.Logger = logger
	return logger
}
