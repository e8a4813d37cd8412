// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	DatabaseURL        string
	RedisURL           string
	Port               string
	MigrationsDir      string
	AllowedOrigins     []string
	RateLimitPerMinute int
	CacheTTL           time.Duration
	LogLevel           slog.Level
}

const (
	defaultPort           = "8080"
	defaultMigrationsDir  = "migrations"
	defaultAllowedOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	defaultRateLimit      = 60
	defaultCacheTTL       = time.Hour
)

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		Port:               getEnv("PORT", defaultPort),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", defaultMigrationsDir),
		AllowedOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)),
		RateLimitPerMinute: defaultRateLimit,
		CacheTTL:           defaultCacheTTL,
		LogLevel:           slog.LevelInfo,
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %q", v)
		}
		cfg.RateLimitPerMinute = n
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid CACHE_TTL %q", v)
		}
		cfg.CacheTTL = d
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}

	return cfg, nil
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
