package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var envVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "LOG_LEVEL",
	"HOST_ROUTER", "ASSETS_MINIFIED", "CORS_ORIGINS",
}

// clearEnv sets every variable Load reads to "", which viper treats as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

// inTempDir runs the test from an empty directory so no .env or
// treibstoff.yaml is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

// TestLoad_Defaults verifies that Load returns development defaults when no
// environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	inTempDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("LogLevel", cfg.LogLevel, "info")
	check("Router", cfg.Router, RouterChi)

	if cfg.Minified {
		t.Error("Minified should default to false in development")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

// TestLoad_EnvOverrides verifies that every environment variable overrides
// its default.
func TestLoad_EnvOverrides(t *testing.T) {
	inTempDir(t)

	overrides := map[string]string{
		"APP_HOST":        "127.0.0.1",
		"APP_PORT":        "9090",
		"APP_ENV":         "testing",
		"LOG_LEVEL":       "DEBUG",
		"HOST_ROUTER":     "mux",
		"ASSETS_MINIFIED": "true",
		"CORS_ORIGINS":    "https://a.example.com, https://b.example.com,",
	}
	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Host != "127.0.0.1" || cfg.Port != "9090" || cfg.Env != "testing" {
		t.Errorf("server settings not overridden: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Router != RouterMux {
		t.Errorf("Router = %q, want %q", cfg.Router, RouterMux)
	}
	if !cfg.Minified {
		t.Error("Minified should be true")
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if strings.Join(cfg.CORSOrigins, "|") != strings.Join(want, "|") {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}

// TestLoad_MinifiedFollowsEnv checks the environment-dependent default and
// that an explicit value wins.
func TestLoad_MinifiedFollowsEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		minified string
		want     bool
	}{
		{name: "production default", env: "production", want: true},
		{name: "development default", env: "development", want: false},
		{name: "production forced off", env: "production", minified: "false", want: false},
		{name: "development forced on", env: "development", minified: "1", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			inTempDir(t)
			t.Setenv("APP_ENV", tt.env)
			t.Setenv("ASSETS_MINIFIED", tt.minified)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if cfg.Minified != tt.want {
				t.Errorf("Minified = %v, want %v", cfg.Minified, tt.want)
			}
		})
	}
}

// TestLoad_RejectsUnknownRouter verifies router validation.
func TestLoad_RejectsUnknownRouter(t *testing.T) {
	clearEnv(t)
	inTempDir(t)
	t.Setenv("HOST_ROUTER", "echo")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should reject an unknown router")
	}
	if !strings.Contains(err.Error(), "HOST_ROUTER") {
		t.Errorf("error should mention HOST_ROUTER, got: %v", err)
	}
}

// TestLoad_ConfigFile verifies that treibstoff.yaml is read and that the
// environment still wins over it.
func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := inTempDir(t)

	yaml := "app_port: \"7070\"\nhost_router: mux\n"
	if err := os.WriteFile(filepath.Join(dir, "treibstoff.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HOST_ROUTER", "chi")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("Port = %q, want %q from file", cfg.Port, "7070")
	}
	if cfg.Router != RouterChi {
		t.Errorf("Router = %q, want env override %q", cfg.Router, RouterChi)
	}
}

// TestLoad_DotEnv verifies that a .env file fills unset variables.
func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := inTempDir(t)
	os.Unsetenv("APP_PORT")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_PORT=6060\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("APP_PORT") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Port != "6060" {
		t.Errorf("Port = %q, want %q from .env", cfg.Port, "6060")
	}
}

// TestAddr verifies the server listen address format.
func TestAddr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     string
		expected string
	}{
		{name: "default", host: "0.0.0.0", port: "8080", expected: "0.0.0.0:8080"},
		{name: "localhost with custom port", host: "127.0.0.1", port: "3000", expected: "127.0.0.1:3000"},
		{name: "empty host", host: "", port: "8080", expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: tt.host, Port: tt.port}
			if got := cfg.Addr(); got != tt.expected {
				t.Errorf("Addr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestIsDev verifies the IsDev method for various environment modes.
func TestIsDev(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{env: "development", expected: true},
		{env: "production", expected: false},
		{env: "testing", expected: false},
		{env: "", expected: false},
		{env: "Development", expected: false},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDev(); got != tt.expected {
				t.Errorf("IsDev() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := Config{LogLevel: in}
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
