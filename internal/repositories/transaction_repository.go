package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformedPayload = errors.New("persisted transactions are not a JSON array")
)

// record is the persisted form of a transaction. Amounts are written as JSON
// numbers; quoted amounts from older payloads still decode.
type record struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
	Description string      `json:"description,omitempty"`
}

func toRecord(t models.Transaction) record {
	return record{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      json.Number(t.Amount.String()),
		Category:    t.Category,
		Date:        t.Date,
		Description: t.Description,
	}
}

func (rec record) toTransaction() (models.Transaction, error) {
	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount %q: %w", rec.Amount, err)
	}
	return models.Transaction{
		ID:          rec.ID,
		Type:        rec.Type,
		Amount:      amount,
		Category:    rec.Category,
		Date:        rec.Date,
		Description: rec.Description,
	}, nil
}

// transactionRepository stores the whole sequence as one JSON array under a single key
type transactionRepository struct {
	store KeyValueStore
	key   string
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(store KeyValueStore, key string) TransactionRepositoryInterface {
	return &transactionRepository{
		store: store,
		key:   key,
	}
}

// Load returns the persisted sequence in stored order.
// An absent key yields an empty sequence and no error.
func (r *transactionRepository) Load() ([]models.Transaction, error) {
	data, err := r.store.Get(r.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if records == nil {
		// a persisted "null"
		return nil, ErrMalformedPayload
	}

	transactions := make([]models.Transaction, 0, len(records))
	for i, raw := range records {
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Warn("skipping undecodable transaction record", "key", r.key, "index", i, "error", err)
			continue
		}
		t, err := rec.toTransaction()
		if err != nil {
			slog.Warn("skipping undecodable transaction record", "key", r.key, "index", i, "error", err)
			continue
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

// Save replaces the persisted sequence
func (r *transactionRepository) Save(transactions []models.Transaction) error {
	records := make([]record, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, toRecord(t))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	if err := r.store.Set(r.key, data); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}
