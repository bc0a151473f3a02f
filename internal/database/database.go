package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens the gorm connection for the configured storage backend (sqlite or postgres).
func New(cfg *config.Config) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite:
		if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.Storage.SQLitePath)
	case config.StorageBackendPostgres:
		dialector = postgres.Open(cfg.Database.DSN())
	default:
		return nil, fmt.Errorf("storage backend %q is not a database backend", cfg.Storage.Backend)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Storage.Backend == config.StorageBackendSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: &cfg.Database,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.KVEntry{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// open is swapped in tests to observe the connection Initialize creates
var open = New

// Initialize connects and brings the schema up to date.
// The connection is closed again when the schema cannot be migrated.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.migrate(cfg); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Warn("failed to close database after migration failure", "error", closeErr)
		}
		return nil, err
	}

	return db, nil
}

func (db *DB) migrate(cfg *config.Config) error {
	if !cfg.Database.AutoMigrate {
		slog.Info("database initialized without migrations", "backend", cfg.Storage.Backend)
		return nil
	}

	if cfg.Storage.Backend == config.StorageBackendPostgres {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}

		err = RunMigrationsIfEnabled(sqlDB, true)
		if err == nil {
			slog.Info("database initialized", "backend", cfg.Storage.Backend)
			return nil
		}
		slog.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)
	}

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("database initialized", "backend", cfg.Storage.Backend)
	return nil
}
