// Package config handles application configuration loading from environment
// variables, an optional .env file and an optional treibstoff.yaml. It provides
// a centralized Config struct used by the asset host.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported host routers.
const (
	RouterChi = "chi"
	RouterMux = "mux"
)

// Config holds all application configuration values.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	LogLevel string // "debug", "info", "warn", "error"

	// Asset host
	Router      string   // "chi" or "mux"
	Minified    bool     // publish the .min variants
	CORSOrigins []string // allowed origins for the static subtree
}

var defaults = map[string]any{
	"APP_HOST":     "0.0.0.0",
	"APP_PORT":     "8080",
	"APP_ENV":      "development",
	"LOG_LEVEL":    "info",
	"HOST_ROUTER":  RouterChi,
	"CORS_ORIGINS": "*",
}

// Load reads configuration, applying development defaults where appropriate.
// A .env file in the working directory is loaded first; variables already set
// in the environment win over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	v.SetConfigName("treibstoff")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		slog.Debug("config file loaded", "path", v.ConfigFileUsed())
	}

	return fromViper(v)
}

// fromViper builds and validates a Config from a populated viper instance.
func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Host:        v.GetString("APP_HOST"),
		Port:        v.GetString("APP_PORT"),
		Env:         v.GetString("APP_ENV"),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),
		Router:      strings.ToLower(v.GetString("HOST_ROUTER")),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
	}

	// Minified assets default on everywhere except development.
	if v.IsSet("ASSETS_MINIFIED") {
		cfg.Minified = v.GetBool("ASSETS_MINIFIED")
	} else {
		cfg.Minified = !cfg.IsDev()
	}

	switch cfg.Router {
	case RouterChi, RouterMux:
	default:
		return nil, fmt.Errorf("HOST_ROUTER must be %q or %q, got %q", RouterChi, RouterMux, cfg.Router)
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
