// Package database manages the persistence layer. Two storage modes sit
// behind the same GORM surface: a remote PostgreSQL database when one is
// configured, or a local SQLite file as the fallback store. The mode is
// probed once at startup and never switches mid-session.
package database

import (
	"fmt"
	"time"

	"smartwealth/internal/config"
	"smartwealth/internal/logger"
	"smartwealth/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db   *gorm.DB
	mode config.StorageMode
	dsn  string
}

// NewManager opens a database connection for the storage mode probed from
// the given configuration.
func NewManager(cfg *config.Config) (*Manager, error) {
	mode := cfg.StorageMode()

	switch mode {
	case config.StorageModePostgres:
		return newPostgresManager(cfg)
	case config.StorageModeSQLite:
		return newSQLiteManager(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", mode)
	}
}

func newPostgresManager(cfg *config.Config) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  postgresDSN(cfg),
		PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Get().Infow("connected to postgres", "host", cfg.DBHost, "database", cfg.DBName)
	return &Manager{db: db, mode: config.StorageModePostgres, dsn: postgresURL(cfg)}, nil
}

func newSQLiteManager(cfg *config.Config) (*Manager, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	logger.Get().Infow("no database host configured, using local sqlite fallback", "path", cfg.SQLitePath)
	return &Manager{db: db, mode: config.StorageModeSQLite}, nil
}

// Migrate brings the schema up to date. Postgres uses versioned SQL
// migrations; the SQLite fallback auto-migrates from the models.
func (m *Manager) Migrate() error {
	if m.mode == config.StorageModePostgres {
		return m.runMigrations()
	}

	return m.db.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
	)
}

// runMigrations applies pending SQL migrations from the migrations/ directory.
func (m *Manager) runMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Mode returns the storage mode this manager was opened with.
func (m *Manager) Mode() config.StorageMode {
	return m.mode
}

func postgresDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
}

func postgresURL(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
}
