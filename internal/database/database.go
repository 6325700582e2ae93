// Package database manages the GORM connection and owns the catalog models.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mantonx/streambase/internal/config"
	"github.com/mantonx/streambase/internal/logger"
)

var db *gorm.DB

// Initialize opens the database connection described by cfg and migrates the schema
func Initialize(cfg *config.DatabaseConfig) error {
	var (
		conn *gorm.DB
		err  error
	)

	switch cfg.Type {
	case "postgres":
		conn, err = connectPostgres(cfg)
	case "sqlite":
		conn, err = connectSQLite(cfg)
	default:
		return fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := Migrate(conn); err != nil {
		return err
	}

	db = conn
	logger.Info("Database initialized", logger.String("type", cfg.Type))
	return nil
}

// Migrate runs schema migrations for all catalog models
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&User{},
		&Content{},
		&Season{},
		&Episode{},
		&UpcomingContent{},
		&AnalyticsEvent{},
	); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}

func connectPostgres(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Username, cfg.Password, cfg.Database, cfg.Port)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger(cfg),
	})
}

func connectSQLite(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: gormLogger(cfg),
	})
}

func gormLogger(cfg *config.DatabaseConfig) gormlogger.Interface {
	if cfg.LogQueries {
		return gormlogger.Default.LogMode(gormlogger.Info)
	}
	return gormlogger.Default.LogMode(gormlogger.Warn)
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// SetDB replaces the database instance. Used by tests.
func SetDB(conn *gorm.DB) {
	db = conn
}
