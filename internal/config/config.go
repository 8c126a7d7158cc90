// Package config loads runtime configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the frontforge server.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string
	Port            int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// DBConfig holds SQLite configuration.
type DBConfig struct {
	// Path is the database file. Empty means the default data dir.
	Path string
}

// RedisConfig holds the optional verdict-cache backend. An empty
// address selects the in-process cache.
type RedisConfig struct {
	Address  string
	Password string
	TTL      time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string

	// FilePath enables rotated file output when set.
	FilePath string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first without overriding real env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("FRONTFORGE_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("FRONTFORGE_PORT", 8080),
			RequestTimeout:  getEnvAsDuration("FRONTFORGE_REQUEST_TIMEOUT", 2*time.Minute),
			ShutdownTimeout: getEnvAsDuration("FRONTFORGE_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		DB: DBConfig{
			Path: getEnv("FRONTFORGE_DB", ""),
		},
		Redis: RedisConfig{
			Address:  getEnv("FRONTFORGE_REDIS_ADDRESS", ""),
			Password: getEnv("FRONTFORGE_REDIS_PASSWORD", ""),
			TTL:      getEnvAsDuration("FRONTFORGE_VERDICT_TTL", 24*time.Hour),
		},
		Log: LogConfig{
			Level:    getEnv("FRONTFORGE_LOG_LEVEL", "info"),
			FilePath: getEnv("FRONTFORGE_LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive: %s", c.Server.RequestTimeout)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
