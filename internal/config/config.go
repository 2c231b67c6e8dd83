// Package config carga la configuración del servicio desde variables de entorno.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"vet-records/internal/platform/logger"
)

type Config struct {
	Port int

	// DBDSN vacío => store in-memory (modo dev).
	DBDSN string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	CORSAllowedOrigins []string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	ShutdownTimeout  time.Duration
}

// Load lee el entorno y valida. Valores mal formados cortan el arranque.
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	cfg.Port, err = getEnvInt("PORT", 3001)
	if err != nil {
		return nil, fmt.Errorf("PORT: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT: out of range: %d", cfg.Port)
	}

	cfg.DBDSN = strings.TrimSpace(os.Getenv("DB_DSN"))

	cfg.LogLevel = logger.ParseLevel(os.Getenv("LOG_LEVEL"))

	format := strings.ToLower(getEnvDefault("LOG_FORMAT", "text"))
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("LOG_FORMAT: invalid format %q (text, json)", format)
	}
	cfg.LogFormat = logger.ParseFormat(format)

	cfg.AppName = getEnvDefault("APP_NAME", "vet-records")

	cfg.CORSAllowedOrigins = splitCSV(getEnvDefault("CORS_ALLOWED_ORIGINS", "*"))

	if cfg.HTTPReadTimeout, err = getEnvDuration("HTTP_READ_TIMEOUT", 5*time.Second); err != nil {
		return nil, fmt.Errorf("HTTP_READ_TIMEOUT: %w", err)
	}
	if cfg.HTTPWriteTimeout, err = getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second); err != nil {
		return nil, fmt.Errorf("HTTP_WRITE_TIMEOUT: %w", err)
	}
	if cfg.HTTPIdleTimeout, err = getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, fmt.Errorf("HTTP_IDLE_TIMEOUT: %w", err)
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", v)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q (e.g. 30s, 1m)", v)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be > 0, got %q", v)
	}
	return d, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
