package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.NotEmpty(t, cfg.Database.DatabasePath)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "streambase.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  read_timeout: 10s
database:
  type: postgres
  host: db.internal
logging:
  level: debug
`), 0o644))

	require.NoError(t, Load(path))
	t.Cleanup(func() { Set(Default()) })

	cfg := Get()
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched values keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "streambase.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o644))

	t.Setenv("STREAMBASE_PORT", "7070")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")

	require.NoError(t, Load(path))
	t.Cleanup(func() { Set(Default()) })

	cfg := Get()
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/tmp/test.db", cfg.Database.DatabasePath)
}

func TestLoad_MissingFile(t *testing.T) {
	err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"unknown db type", func(c *Config) { c.Database.Type = "oracle" }, "database.type"},
		{"sqlite without path", func(c *Config) { c.Database.DatabasePath = "" }, "database.database_path"},
		{"no connections", func(c *Config) { c.Database.MaxOpenConns = 0 }, "database.max_open_conns"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "streambase.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8081\n"), 0o644))

	require.NoError(t, Load(path))
	t.Cleanup(func() { Set(Default()) })

	watcher, err := NewWatcher(path)
	require.NoError(t, err)
	defer watcher.Stop()

	reloaded := make(chan *Config, 1)
	watcher.OnReload(func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	watcher.Start()

	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8082\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 8082, cfg.Server.Port)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}
