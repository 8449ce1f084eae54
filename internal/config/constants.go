package config

import (
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

const (
	// Configuration file paths
	ConfigPathItems       = "configs/items/items.json"
	ConfigPathItemsSchema = "configs/schemas/items.schema.json"
)

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = logger.EnvironmentDev
	DefaultVersion           = "dev"
	DefaultStoreDriver       = StoreDriverMemory
	DefaultSQLitePath        = "data/gildedrose.db"
	DefaultDBMaxConns        = 10
	DefaultUTCOffsetHours    = 0
	DefaultEngineWorkers     = 1
	DefaultDayInterval       = time.Duration(0)
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
