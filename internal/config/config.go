package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken  string
	LogLevel  string
	API       APIConfig
	RateLimit RateLimitConfig

	// SessionTTL is how long an idle admin dialog is kept
	SessionTTL time.Duration
}

// APIConfig holds inventory REST API settings
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	RPS     float64
}

// RateLimitConfig holds per-user update limits
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:5000"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	var err error
	if cfg.API.Timeout, err = getDuration("API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.API.RPS, err = getFloat("API_RPS", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimit.PerSecond, err = getFloat("USER_RATE_LIMIT", 2); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = getInt("USER_RATE_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
