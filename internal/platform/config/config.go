package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	LogLevel     string
	FixturesPort string
}

// Load reads environment variables into a Config with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		BaseURL:      getEnv("INSIGHTS_BASE_URL", "http://localhost:5000"),
		LogLevel:     getEnv("INSIGHTS_LOG_LEVEL", "info"),
		FixturesPort: getEnv("FIXTURES_PORT", "5000"),
	}

	timeoutSec, err := parseIntEnv("INSIGHTS_TIMEOUT_SECONDS", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse INSIGHTS_TIMEOUT_SECONDS: %w", err)
	}
	cfg.Timeout = time.Duration(timeoutSec) * time.Second

	retries, err := parseIntEnv("INSIGHTS_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse INSIGHTS_MAX_RETRIES: %w", err)
	}
	cfg.MaxRetries = retries

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures required fields are present and well-formed.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("INSIGHTS_BASE_URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("INSIGHTS_BASE_URL %q is not an absolute URL", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return errors.New("INSIGHTS_TIMEOUT_SECONDS must be positive")
	}
	if c.MaxRetries <= 0 {
		return errors.New("INSIGHTS_MAX_RETRIES must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("INSIGHTS_LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func parseIntEnv(key string, defaultVal int) (int, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
