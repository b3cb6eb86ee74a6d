package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const defaultJWTSecret = "dev-secret-change-in-production"

// Config holds the application configuration.
type Config struct {
	Port           string
	Env            string
	DatabaseDriver string
	DatabaseDSN    string
	MigrateOnStart bool
	JWTSecret      string
	JWTExpiry      time.Duration
	BcryptCost     int
	AuthRateRPS    float64
	AuthRateBurst  int
	LogLevel       string
	LogFormat      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "mysql"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/yoga?parseTime=true"),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", true),
		JWTSecret:      getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:      time.Duration(getEnvInt("JWT_EXPIRATION_MS", 86400000)) * time.Millisecond,
		BcryptCost:     getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		AuthRateRPS:    getEnvFloat("AUTH_RATE_LIMIT_RPS", 5),
		AuthRateBurst:  getEnvInt("AUTH_RATE_LIMIT_BURST", 10),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}
}

// Validate reports the first setting the server cannot start with.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.Env == "production" && c.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production environment")
	}
	if c.JWTExpiry < 0 {
		return fmt.Errorf("JWT_EXPIRATION_MS must not be negative, got %s", c.JWTExpiry)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	switch c.DatabaseDriver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}
