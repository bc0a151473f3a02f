package services

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

const (
	opLoad   = "load"
	opAdd    = "add"
	opRemove = "remove"
)

// transactionStore keeps the ordered sequence in memory and flushes it
// to the repository after every mutation. Newest transactions come first.
type transactionStore struct {
	repo    repositories.TransactionRepositoryInterface
	metrics MetricsRecorderInterface

	mu           sync.RWMutex
	transactions []models.Transaction
	loaded       bool
}

// NewTransactionStore creates an empty, not yet loaded store
func NewTransactionStore(repo repositories.TransactionRepositoryInterface, metrics MetricsRecorderInterface) TransactionStoreInterface {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &transactionStore{
		repo:         repo,
		metrics:      metrics,
		transactions: []models.Transaction{},
	}
}

func (s *transactionStore) Load() {
	start := time.Now()

	persisted, err := s.repo.Load()
	if err != nil {
		slog.Warn("failed to load persisted transactions, starting empty", "error", err)
		s.metrics.IncrementCounter("store.operation", map[string]string{"operation": opLoad, "status": "failed"})
		persisted = nil
	}

	transactions := sanitize(persisted)

	s.mu.Lock()
	s.transactions = transactions
	s.loaded = true
	s.mu.Unlock()

	if err == nil {
		s.metrics.IncrementCounter("store.operation", map[string]string{"operation": opLoad, "status": "success"})
	}
	s.metrics.RecordGauge("store.transactions", float64(len(transactions)), nil)
	s.metrics.RecordProcessingTime("store."+opLoad, time.Since(start))

	slog.Info("transactions loaded", "count", len(transactions), "skipped", len(persisted)-len(transactions))
}

// sanitize drops records that could not have been produced by Add
func sanitize(persisted []models.Transaction) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(persisted))
	seen := make(map[string]struct{}, len(persisted))

	for i, t := range persisted {
		if err := t.Validate(); err != nil {
			slog.Warn("skipping malformed transaction", "index", i, "id", t.ID, "error", err)
			continue
		}
		if _, dup := seen[t.ID]; dup {
			slog.Warn("skipping duplicate transaction id", "index", i, "id", t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		transactions = append(transactions, t)
	}

	return transactions
}

func (s *transactionStore) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *transactionStore) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *transactionStore) Add(input models.TransactionInput) (models.Transaction, bool) {
	start := time.Now()

	if err := input.Validate(); err != nil {
		slog.Debug("ignoring invalid transaction input", "error", err)
		s.metrics.IncrementCounter("store.operation", map[string]string{"operation": opAdd, "status": "rejected"})
		return models.Transaction{}, false
	}
	if strings.TrimSpace(input.Date) == "" {
		input.Date = models.Today()
	}

	tx := models.NewTransaction(input)

	s.mu.Lock()
	defer s.mu.Unlock()

	for s.indexOf(tx.ID) >= 0 {
		tx.ID = uuid.New().String()
	}

	next := make([]models.Transaction, 0, len(s.transactions)+1)
	next = append(next, tx)
	next = append(next, s.transactions...)
	s.transactions = next

	s.persistLocked(opAdd)
	s.metrics.RecordProcessingTime("store."+opAdd, time.Since(start))

	return tx, true
}

func (s *transactionStore) Remove(id string) bool {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.metrics.IncrementCounter("store.operation", map[string]string{"operation": opRemove, "status": "not_found"})
		return false
	}

	next := make([]models.Transaction, 0, len(s.transactions)-1)
	next = append(next, s.transactions[:idx]...)
	next = append(next, s.transactions[idx+1:]...)
	s.transactions = next

	s.persistLocked(opRemove)
	s.metrics.RecordProcessingTime("store."+opRemove, time.Since(start))

	return true
}

func (s *transactionStore) Aggregates() models.Aggregates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.ComputeAggregates(s.transactions)
}

func (s *transactionStore) indexOf(id string) int {
	for i, t := range s.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked flushes the sequence. A failed write is logged and counted;
// the in-memory change stands and is not retried.
func (s *transactionStore) persistLocked(operation string) {
	s.metrics.RecordGauge("store.transactions", float64(len(s.transactions)), nil)

	if err := s.repo.Save(s.transactions); err != nil {
		slog.Warn("failed to persist transactions", "operation", operation, "count", len(s.transactions), "error", err)
		s.metrics.IncrementCounter("store.persist.failed", map[string]string{"operation": operation})
		s.metrics.IncrementCounter("store.operation", map[string]string{"operation": operation, "status": "unpersisted"})
		return
	}

	s.metrics.IncrementCounter("store.operation", map[string]string{"operation": operation, "status": "success"})
}
