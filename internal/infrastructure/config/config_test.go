package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
server:
  port: 8081
  mode: debug
database:
  driver: mysql
  host: db
  port: 3306
  user: root
  password: secret
  dbname: books
pagination:
  default_page_size: 5
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout, "未配置项使用默认值")
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
	assert.Equal(t, "root:secret@tcp(db:3306)/books?charset=utf8mb4&parseTime=true&loc=Local", cfg.Database.DSN())
	assert.NotContains(t, cfg.Database.RedactedDSN(), "secret")
}

func TestEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "server:\n  port: 8081\n")

	t.Setenv("BOOKSHELF_DATABASE_PASSWORD", "from-env")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("BOOKSHELF_PAGINATION_MAX_PAGE_SIZE", "50")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
	assert.Equal(t,
		"host=pg.internal port=5432 user=postgres password=from-env dbname=bookshelf sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "DB_DATABASE=from_dotenv\n")
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("DB_DATABASE") })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3009, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "from_dotenv", cfg.Database.DBName)
	assert.Equal(t, 2, cfg.Pagination.DefaultPageSize)
	assert.True(t, cfg.CORS.Enabled)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:     ServerConfig{Port: 3009},
			Database:   DatabaseConfig{Driver: DriverPostgres},
			Pagination: PaginationConfig{DefaultPageSize: 2, MaxPageSize: 100},
		}
	}

	assert.NoError(t, validate(base()))

	cfg := base()
	cfg.Server.Port = 70000
	assert.Error(t, validate(cfg))

	cfg = base()
	cfg.Database.Driver = "oracle"
	assert.Error(t, validate(cfg))

	cfg = base()
	cfg.Database.Driver = DriverSQLite
	assert.Error(t, validate(cfg), "sqlite必须指定文件路径")

	cfg = base()
	cfg.Pagination.MaxPageSize = 1
	assert.Error(t, validate(cfg))
}
