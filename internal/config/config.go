package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	APIBaseURL      string
	APITimeout      time.Duration
	APIMaxRetries   int
	CartStorePath   string
	RedisAddr       string
	CheckoutDelay   time.Duration
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		APIBaseURL:      envOrDefault("API_BASE_URL", "https://trendify-backend-ehwe.onrender.com/api/v1"),
		APITimeout:      envDuration("API_TIMEOUT_SECONDS", 30*time.Second),
		APIMaxRetries:   envInt("API_MAX_RETRIES", 2),
		CartStorePath:   envOrDefault("CART_STORE_PATH", "cart.json"),
		RedisAddr:       envOrDefault("REDIS_ADDR", ""),
		CheckoutDelay:   envDuration("CHECKOUT_DELAY_SECONDS", 5*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
