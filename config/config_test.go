package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Web.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "productos", cfg.Database.Name)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.yml")
	content := `
web:
  port: 8081
database:
  type: sqlite
  name: /tmp/catalog.db
logger:
  mode: production
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_CONN", "7")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Web.Port, "env overrides the file")
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "/tmp/catalog.db", cfg.Database.DSN())
	assert.Equal(t, 7, cfg.Database.MaxConn)
	assert.Equal(t, "production", cfg.Logger.Mode)
	assert.Equal(t, 3000, DefaultAppConfig.Web.Port, "defaults stay untouched")
}

func TestLoadConfigInvalidPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Web.Port)
}

func TestDSN(t *testing.T) {
	d := DBConfig{Type: "postgres", Host: "db", Port: 5433, User: "u", Passwd: "p", Name: "productos"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=productos sslmode=disable", d.DSN())

	d.URL = "postgres://u:p@db:5433/productos"
	assert.Equal(t, "postgres://u:p@db:5433/productos", d.DSN())
}
