// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	// Database
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	// AWS
	AWSRegion     string
	S3PhotoBucket string

	// HTTP
	Port           string
	AllowedOrigins []string

	// Application
	Stage    string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// Database
		DBHost:     getEnv("DB_HOST", getEnv("SOLAR_DB_HOST", "localhost")),
		DBPort:     getEnvInt("DB_PORT", getEnvInt("SOLAR_DB_PORT", 5432)),
		DBName:     getEnv("DB_NAME", getEnv("SOLAR_DB_NAME", "rooftop_subsidy")),
		DBUser:     getEnv("DB_USER", getEnv("SOLAR_DB_USER", "postgres")),
		DBPassword: getEnv("DB_PASSWORD", getEnv("SOLAR_DB_PASSWORD", "")),

		// AWS
		AWSRegion:     getEnv("AWS_REGION", "ap-south-1"),
		S3PhotoBucket: getEnv("S3_PHOTO_BUCKET", "rooftop-subsidy-photos-dev"),

		// HTTP
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitEnv("ALLOWED_ORIGINS", "*"),

		// Application
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	sslMode := "require"
	if c.DBHost == "localhost" || c.DBHost == "127.0.0.1" {
		sslMode = "disable" // Disable SSL for local development
	}
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + strconv.Itoa(c.DBPort) + "/" + c.DBName + "?sslmode=" + sslMode
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// splitEnv retrieves a comma-separated environment variable as a slice.
func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
