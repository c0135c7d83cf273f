// Package config loads process-wide configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the server.
// It is built once at startup and passed by parameter into constructors;
// business logic never reads the environment directly.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// Env is the environment name (development, production, ...).
	// Stack details in error responses are suppressed in production.
	Env string

	// JWTSecret is the HMAC signing key for issued tokens.
	// Rotating it invalidates all previously issued tokens.
	JWTSecret string

	// JWTExpiresIn is the time-to-live of issued tokens.
	JWTExpiresIn time.Duration

	// DBDriver selects the storage engine: "sqlite" or "postgres".
	DBDriver string

	// DBPath is the sqlite database file path (sqlite driver only).
	DBPath string

	// DBDSN is the connection string for postgres (postgres driver only).
	DBDSN string

	// CORSOrigin is the allowed cross-origin source, "*" for any.
	CORSOrigin string
}

// DefaultJWTSecret is the fallback signing key for local development.
// Production deployments must set JWT_SECRET.
const DefaultJWTSecret = "dev-secret-key"

// Load reads the configuration from the environment with development defaults.
func Load() Config {
	return Config{
		Port:         getEnvInt("PORT", 3000),
		Env:          getEnv("APP_ENV", "development"),
		JWTSecret:    getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiresIn: getEnvDuration("JWT_EXPIRES_IN", 24*time.Hour),
		DBDriver:     getEnv("DB_TYPE", "sqlite"),
		DBPath:       getEnv("DB_PATH", "data/users.db"),
		DBDSN:        getEnv("DB_DSN", ""),
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
	}
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %d: %v", key, v, fallback, err)
			return fallback
		}
		return num
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", key, v, fallback, err)
			return fallback
		}
		return d
	}
	return fallback
}
