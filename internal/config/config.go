package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	Environment string `validate:"oneof=dev staging prod test"`
	Version     string
	APIKey      string `validate:"required"` // API key for admin routes

	// Storage
	StoreDriver       string `validate:"oneof=memory sqlite postgres"`
	SQLitePath        string `validate:"required_if=StoreDriver sqlite"`
	DBUser            string `validate:"required_if=StoreDriver postgres"`
	DBPassword        string
	DBHost            string `validate:"required_if=StoreDriver postgres"`
	DBPort            string `validate:"required_if=StoreDriver postgres"`
	DBName            string `validate:"required_if=StoreDriver postgres"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Inventory
	ItemsSeedPath        string
	ItemsSchemaPath      string
	UpdateUTCOffsetHours int           `validate:"min=-12,max=14"`
	SimulatedDayInterval time.Duration `validate:"gte=0"`
	EngineWorkers        int           `validate:"min=1,max=256"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		APIKey:      getEnv("API_KEY", ""),

		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", DefaultStoreDriver)),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "gildedrose"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		ItemsSeedPath:        getEnv("ITEMS_SEED_PATH", ConfigPathItems),
		ItemsSchemaPath:      getEnv("ITEMS_SCHEMA_PATH", ConfigPathItemsSchema),
		UpdateUTCOffsetHours: getEnvAsInt("UPDATE_UTC_OFFSET_HOURS", DefaultUTCOffsetHours),
		SimulatedDayInterval: getEnvAsDuration("SIMULATED_DAY_INTERVAL", DefaultDayInterval),
		EngineWorkers:        getEnvAsInt("ENGINE_WORKERS", DefaultEngineWorkers),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and driver-specific requirements
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// UpdateLocation returns the fixed zone in which the nightly update runs at midnight
func (c *Config) UpdateLocation() *time.Location {
	if c.UpdateUTCOffsetHours == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.UpdateUTCOffsetHours), c.UpdateUTCOffsetHours*int(time.Hour/time.Second))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration such as "30s" or "1h", falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
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
