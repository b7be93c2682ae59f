package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	APIKey      string // API key for authentication

	// Collaborators
	OCRBaseURL  string // EasyOCR backend, e.g. http://localhost:5000
	CatalogPath string // item catalog JSON
	PricesPath  string // market price snapshot JSON
	RedisAddr   string // optional; when set, prices come from Redis

	// Postgres (optional; prefs fall back to in-memory when DBHost is empty)
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Planner guards
	RitualCooldown time.Duration
	MaxUnits       int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		APIKey:      getEnv("API_KEY", ""),
		OCRBaseURL:  getEnv("OCR_BASE_URL", "http://localhost:5000"),
		CatalogPath: getEnv("CATALOG_PATH", "configs/items.json"),
		PricesPath:  getEnv("PRICES_PATH", "configs/prices.json"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", ""),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "ritualbot"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cooldownStr := getEnv("RITUAL_COOLDOWN_SECONDS", "6")
	cooldownSec, err := strconv.Atoi(cooldownStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RITUAL_COOLDOWN_SECONDS value: %w", err)
	}
	cfg.RitualCooldown = time.Duration(cooldownSec) * time.Second

	maxUnitsStr := getEnv("MAX_UNITS", "5")
	maxUnits, err := strconv.Atoi(maxUnitsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UNITS value: %w", err)
	}
	cfg.MaxUnits = maxUnits

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// UsesPostgres reports whether a database host was configured.
func (c *Config) UsesPostgres() bool {
	return c.DBHost != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
