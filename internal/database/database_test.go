package database

import (
	"path/filepath"
	"testing"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Backend:    config.StorageBackendSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "nested", "finance.db"),
		},
		Database: config.DatabaseConfig{AutoMigrate: true},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	assert.True(t, db.Migrator().HasTable(&models.KVEntry{}))
}

func TestInitialize_SQLiteWithoutMigrations(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Backend:    config.StorageBackendSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "finance.db"),
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.False(t, db.Migrator().HasTable(&models.KVEntry{}))
}

func TestInitialize_ClosesConnectionWhenMigrationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.db")
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Backend:    config.StorageBackendSQLite,
			SQLitePath: path,
		},
		Database: config.DatabaseConfig{AutoMigrate: true},
	}

	// a view holding the table name makes CREATE TABLE fail
	seed, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, seed.Exec("CREATE VIEW kv_entries AS SELECT 1 AS id").Error)
	require.NoError(t, seed.Close())

	var opened *DB
	open = func(cfg *config.Config) (*DB, error) {
		db, err := New(cfg)
		opened = db
		return db, err
	}
	t.Cleanup(func() { open = New })

	db, err := Initialize(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migrations")
	assert.Nil(t, db)
	require.NotNil(t, opened)
	assert.ErrorContains(t, opened.HealthCheck(), "database is closed")
}

func TestNew_RejectsNonDatabaseBackend(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: config.StorageBackendFile}}

	_, err := New(cfg)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a database backend")
}
