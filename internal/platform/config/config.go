package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

type Config struct {
	Addr            string
	APIBaseURL      string
	APITimeout      time.Duration
	NotificationTTL time.Duration
	Environment     string
}

func Load() Config {
	return Config{
		Addr:            getEnv("APP_ADDR", ":8080"),
		APIBaseURL:      getEnv("API_BASE_URL", "https://localhost:65126/api"),
		APITimeout:      getEnvDuration("API_TIMEOUT", 30*time.Second),
		NotificationTTL: getEnvDuration("NOTIFICATION_TTL", 6*time.Second),
		Environment:     getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	base := strings.TrimSpace(c.APIBaseURL)
	if base == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	if c.NotificationTTL <= 0 {
		return fmt.Errorf("NOTIFICATION_TTL must be positive")
	}
	return nil
}
