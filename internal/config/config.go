// Package config loads settings from config.yaml, .env and APP_* variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config mirrors the accepted settings.
type Config struct {
	AppName         string        `mapstructure:"app_name"`
	Env             string        `mapstructure:"env"`       // dev|staging|prod
	HTTPPort        string        `mapstructure:"http_port"` // ":8080"
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"` // console|json
	MetricsEnabled  bool          `mapstructure:"metrics_enabled"`
	BodyLimit       int           `mapstructure:"body_limit"` // bytes
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// IsDev reports whether the service runs on a developer machine.
func (c *Config) IsDev() bool {
	return c.Env == "" || c.Env == "dev" || c.Env == "development"
}

// Load reads .env into the environment when present, then merges
// defaults, an optional config file and APP_* variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_name", "Master Cadastros")
	v.SetDefault("env", "dev")
	v.SetDefault("http_port", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("body_limit", 1024*1024)
	v.SetDefault("shutdown_timeout", "10s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.HTTPPort, ":") {
		c.HTTPPort = ":" + c.HTTPPort
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q: want console or json", c.LogFormat)
	}
	if c.BodyLimit <= 0 {
		return fmt.Errorf("invalid body_limit %d", c.BodyLimit)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown_timeout %s", c.ShutdownTimeout)
	}
	return nil
}
