package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// StorageMode selects which persistence backend the application uses.
// The mode is probed once at startup and is fixed for the lifetime of the
// process; switching modes live is not supported.
type StorageMode string

const (
	// StorageModePostgres uses a remote PostgreSQL database as the source of truth.
	StorageModePostgres StorageMode = "postgres"
	// StorageModeSQLite uses a local SQLite file as a fallback store.
	StorageModeSQLite StorageMode = "sqlite"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Advisor
	GeminiAPIKey string
	GeminiModel  string

	// Seed demo accounts/transactions for users with empty data
	SeedDemoData bool
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "smartwealth"),
		DBPassword: getEnv("DB_PASSWORD", "smartwealth"),
		DBName:     getEnv("DB_NAME", "smartwealth"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "smartwealth.db"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Advisor
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	if seed, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false")); err == nil {
		config.SeedDemoData = seed
	}

	appConfig = config
	return config, nil
}

// StorageMode returns the persistence mode for this process. Postgres is
// used when a database host is configured; otherwise the local SQLite
// fallback is selected.
func (c *Config) StorageMode() StorageMode {
	if c.DBHost != "" {
		return StorageModePostgres
	}
	return StorageModeSQLite
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
