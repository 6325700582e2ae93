// Package config manages the Streambase application configuration.
// Configuration is resolved in three layers: built-in defaults, an optional
// YAML file, and environment variable overrides (highest precedence).
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server"`
	Database DatabaseConfig `yaml:"database" json:"database"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host           string        `yaml:"host" json:"host"`
	Port           int           `yaml:"port" json:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout" json:"write_timeout"`
	EnableCORS     bool          `yaml:"enable_cors" json:"enable_cors"`
	AllowedOrigins []string      `yaml:"allowed_origins" json:"allowed_origins"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Type            string        `yaml:"type" json:"type"` // sqlite or postgres
	Host            string        `yaml:"host" json:"host"`
	Port            int           `yaml:"port" json:"port"`
	Username        string        `yaml:"username" json:"username"`
	Password        string        `yaml:"password" json:"password"`
	Database        string        `yaml:"database" json:"database"`
	DatabasePath    string        `yaml:"database_path" json:"database_path"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime"`
	LogQueries      bool          `yaml:"log_queries" json:"log_queries"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

var (
	current *Config
	mu      sync.RWMutex
)

// Default returns a configuration with all default values set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			EnableCORS:     true,
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Type:            "sqlite",
			Host:            "localhost",
			Port:            5432,
			Username:        "streambase",
			Database:        "streambase",
			DatabasePath:    "./data/streambase.db",
			MaxOpenConns:    100,
			MaxIdleConns:    20,
			ConnMaxLifetime: 2 * time.Hour,
			LogQueries:      false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the given YAML file path (optional) and
// applies environment overrides. The result becomes the active configuration.
func Load(path string) error {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	mu.Lock()
	current = cfg
	mu.Unlock()
	return nil
}

// Get returns the active configuration, loading defaults if Load was never called
func Get() *Config {
	mu.RLock()
	cfg := current
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = Default()
		applyEnvOverrides(current)
	}
	return current
}

// Set replaces the active configuration. Used by the watcher and tests.
func Set(cfg *Config) {
	mu.Lock()
	current = cfg
	mu.Unlock()
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STREAMBASE_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("STREAMBASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_TYPE"); v != "" {
		cfg.Database.Type = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.DatabasePath = v
	}
	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("POSTGRES_USER"); v != "" {
		cfg.Database.Username = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		cfg.Database.Database = v
	}
	if v := os.Getenv("DB_LOG_QUERIES"); v != "" {
		cfg.Database.LogQueries = v == "true" || v == "1"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate checks the configuration for inconsistent values
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ValidationError{Field: "server.port", Message: "must be between 1 and 65535"}
	}
	switch c.Database.Type {
	case "sqlite", "postgres":
	default:
		return &ValidationError{Field: "database.type", Message: "must be sqlite or postgres"}
	}
	if c.Database.Type == "sqlite" && c.Database.DatabasePath == "" {
		return &ValidationError{Field: "database.database_path", Message: "required for sqlite"}
	}
	if c.Database.MaxOpenConns < 1 {
		return &ValidationError{Field: "database.max_open_conns", Message: "must be at least 1"}
	}
	return nil
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error in field '" + e.Field + "': " + e.Message
}
