package services

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionStoreInterface is the authoritative, persisted list of transactions
type TransactionStoreInterface interface {
	// Load reads the persisted sequence. It never fails: unreadable state yields an empty store.
	Load()
	IsLoaded() bool
	// Transactions returns a copy of the sequence, newest first
	Transactions() []models.Transaction
	// Add prepends a new transaction and persists. Invalid input is ignored and reported as false.
	Add(input models.TransactionInput) (models.Transaction, bool)
	// Remove deletes the transaction with id and persists. Unknown ids are ignored.
	Remove(id string) bool
	Aggregates() models.Aggregates
}

// SummaryServiceInterface derives the analytics views from the store
type SummaryServiceInterface interface {
	GetSummary() models.Summary
	GetMonthlySummary(year, month int) (models.MonthlySummary, error)
	GetCategoryBreakdown() []models.CategoryShare
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TokenServiceInterface issues and validates API bearer tokens
type TokenServiceInterface interface {
	GenerateAccessToken(subject string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

// TransactionGeneratorInterface generates realistic transaction inputs for demos and seeding
type TransactionGeneratorInterface interface {
	GenerateHistory(startDate, endDate time.Time, count int) []models.TransactionInput
	GenerateTransaction(startDate, endDate time.Time) models.TransactionInput
	GenerateSalaryInputs(startDate, endDate time.Time) []models.TransactionInput
	GenerateType() string
	GenerateAmount(category string) decimal.Decimal
}
