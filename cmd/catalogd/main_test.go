package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/productcatalog/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "catalogd.yml")
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))

	prevConf, prevInit := *conffile, *initdb
	t.Cleanup(func() { *conffile, *initdb = prevConf, prevInit })
	*conffile = file
}

func TestRunReturnsInitError(t *testing.T) {
	writeConfig(t, `
system:
  workdir: `+t.TempDir()+`
database:
  type: mysql
`)

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestRunInitDbSeedsAndReleases(t *testing.T) {
	workdir := t.TempDir()
	writeConfig(t, `
system:
  workdir: `+workdir+`
database:
  type: sqlite
  name: catalog.db
`)
	*initdb = true

	require.NoError(t, run())

	db, err := gorm.Open(sqlite.Open(filepath.Join(workdir, "data", "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var n int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&n).Error)
	assert.EqualValues(t, 8, n)
}
