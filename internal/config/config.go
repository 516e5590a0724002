package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// SiteName appears in page titles and the layout header.
	SiteName string

	// PublicDir holds the published site files, including content/ written by the CMS.
	PublicDir string

	// ContentBaseURL, when set, makes the loader fetch content over HTTP
	// instead of reading PublicDir directly.
	ContentBaseURL string

	// Content loading
	FetchTimeout         time.Duration
	FetchRetries         int
	MaxConcurrentFetches int
	StatsWindow          time.Duration

	// Server timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	LogLevel string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:     envOr("PORT", "8080"),
		SiteName: envOr("SITE_NAME", "Sengani Girls School"),

		PublicDir:      envOr("PUBLIC_DIR", "./public"),
		ContentBaseURL: strings.TrimRight(os.Getenv("CONTENT_BASE_URL"), "/"),

		FetchTimeout:         envDuration("CONTENT_FETCH_TIMEOUT", 10*time.Second),
		FetchRetries:         envInt("CONTENT_FETCH_RETRIES", 0),
		MaxConcurrentFetches: envInt("CONTENT_MAX_CONCURRENT", 8),
		StatsWindow:          envDuration("CONTENT_STATS_WINDOW", 1*time.Hour),

		ReadTimeout:     envDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    envDuration("WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogLevel: envOr("LOG_LEVEL", "info"),
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if cfg.FetchRetries < 0 {
		cfg.FetchRetries = 0
	}
	if cfg.MaxConcurrentFetches <= 0 {
		cfg.MaxConcurrentFetches = 8
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.ContentBaseURL == "" && c.PublicDir == "" {
		return fmt.Errorf("one of PUBLIC_DIR or CONTENT_BASE_URL is required")
	}
	if c.ContentBaseURL != "" && !strings.HasPrefix(c.ContentBaseURL, "http://") && !strings.HasPrefix(c.ContentBaseURL, "https://") {
		return fmt.Errorf("CONTENT_BASE_URL must be an http(s) URL, got %q", c.ContentBaseURL)
	}
	if c.FetchRetries > 5 {
		return fmt.Errorf("CONTENT_FETCH_RETRIES must be at most 5, got %d", c.FetchRetries)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
