// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret is only meant for local development
const DefaultSessionSecret = "dev-secret-change-in-production-use-openssl-rand-base64-32"

// Config holds application configuration
type Config struct {
	Port          int
	LogLevel      string
	LogFormat     string // "console" or "json"
	SessionSecret string
	SessionTTL    time.Duration
	CORSOrigins   []string

	// UsingDefaultSecret is set when SESSION_SECRET was not provided
	UsingDefaultSecret bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL: must be positive, got %s", ttl)
	}

	secret := getEnv("SESSION_SECRET", "")
	if secret == "" {
		secret = DefaultSessionSecret
	}

	cfg := &Config{
		Port:          getEnvAsInt("PORT", 8080),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		SessionSecret: secret,
		SessionTTL:    ttl,
		CORSOrigins:   getEnvAsList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),

		UsingDefaultSecret: secret == DefaultSessionSecret,
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
