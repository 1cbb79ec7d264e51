package config

import (
	"os"
	"strconv"

	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Rules RulesConfig
	Redis RedisConfig
	Log   LogConfig
}

// RulesConfig holds trait rule configuration
type RulesConfig struct {
	// Path is the catalog file (.yaml, .yml or .json)
	Path string
	// PersistState includes the rule state in save payloads when set
	PersistState bool
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL      string // Optional: overrides Addr/Password/DB when set
	Addr     string
	Password string
	DB       int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Mode string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Rules: RulesConfig{
			Path:         os.Getenv("TRAITS_RULES_PATH"),
			PersistState: getEnvAsBoolOrDefault("TRAITS_PERSIST_RULE_STATE", false),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Log: LogConfig{
			Mode: getEnvOrDefault("LOG_MODE", "dev"),
		},
	}

	// Validate required fields
	if cfg.Rules.Path == "" {
		return nil, traiterr.InvalidArgument("TRAITS_RULES_PATH is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
