package app

import (
	"fmt"
	"log/slog"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

// App holds the loaded store and the services built on top of it.
// It is constructed once by each binary and passed to handlers or commands.
type App struct {
	Config  *config.Config
	Store   services.TransactionStoreInterface
	Summary services.SummaryServiceInterface
	Metrics services.MetricsRecorderInterface

	db *database.DB
}

// Open builds the configured storage backend, loads the transaction store and
// wires the summary service. reg may be nil, in which case metrics are discarded.
func Open(cfg *config.Config, reg prometheus.Registerer) (*App, error) {
	kv, db, err := OpenKeyValueStore(cfg)
	if err != nil {
		return nil, err
	}

	metrics := services.NewNoopMetrics()
	if reg != nil {
		metrics = services.NewPrometheusMetrics(reg)
	}

	repo := repositories.NewTransactionRepository(kv, cfg.Storage.Key)
	store := services.NewTransactionStore(repo, metrics)
	store.Load()

	slog.Info("transaction store loaded",
		"backend", cfg.Storage.Backend,
		"key", cfg.Storage.Key,
		"transactions", len(store.Transactions()),
	)

	return &App{
		Config:  cfg,
		Store:   store,
		Summary: services.NewSummaryService(store),
		Metrics: metrics,
		db:      db,
	}, nil
}

// OpenKeyValueStore returns the key-value backend selected by cfg.Storage.Backend.
// The returned *database.DB is nil unless the backend is sqlite or postgres.
func OpenKeyValueStore(cfg *config.Config) (repositories.KeyValueStore, *database.DB, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		return repositories.NewMemoryStore(), nil, nil
	case config.StorageBackendFile:
		kv, err := repositories.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return kv, nil, nil
	case config.StorageBackendSQLite, config.StorageBackendPostgres:
		db, err := database.Initialize(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repositories.NewGormStore(db.DB), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// HealthCheck pings the database backend; other backends are always healthy
func (a *App) HealthCheck() error {
	if a.db == nil {
		return nil
	}
	return a.db.HealthCheck()
}

// UsesDatabase reports whether the store is backed by sqlite or postgres
func (a *App) UsesDatabase() bool {
	return a.db != nil
}

// Close releases the database connection, if any
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
