package repositories

import (
	"finance-tracker/internal/models"
)

// KeyValueStore defines the contract for the durable key-value backends.
// Get returns ErrKeyNotFound when the key has never been written.
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// TransactionRepositoryInterface defines the contract for persisting the transaction sequence
type TransactionRepositoryInterface interface {
	Load() ([]models.Transaction, error)
	Save(transactions []models.Transaction) error
}
