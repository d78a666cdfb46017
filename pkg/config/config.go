package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// Endpoint is the base URL of the QKart API, e.g. http://localhost:8082/api/v1.
	Endpoint string

	HTTPTimeout    time.Duration
	SearchDebounce time.Duration

	// SessionFile overrides the default session path when set.
	SessionFile string
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Endpoint:       getEnv("QKART_ENDPOINT", "http://localhost:8082/api/v1"),
		HTTPTimeout:    getEnvMillis("QKART_HTTP_TIMEOUT_MS", 15000),
		SearchDebounce: getEnvMillis("QKART_SEARCH_DEBOUNCE_MS", 1000),
		SessionFile:    getEnv("QKART_SESSION_FILE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvMillis(key string, def int) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return time.Duration(def) * time.Millisecond
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return time.Duration(def) * time.Millisecond
	}

	return time.Duration(n) * time.Millisecond
}
