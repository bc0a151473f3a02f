package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	// DateLayout is the ISO calendar date format used for Transaction.Date.
	DateLayout = "2006-01-02"

	MaxDescriptionLength = 100

	// MaxAmountDecimals is the number of fractional digits an amount may carry.
	MaxAmountDecimals = 2

	maxAmountExponent = 12
)

// MaxAmount is the exclusive upper bound of a transaction amount.
var MaxAmount = decimal.New(1, maxAmountExponent)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive and below 10^12 with at most 2 decimal places")
	ErrMissingID              = errors.New("transaction ID is required")
	ErrMissingCategory        = errors.New("transaction category is required")
	ErrInvalidDate            = errors.New("transaction date must be in YYYY-MM-DD format")
)

// Transaction is a single recorded income or expense event.
// Records are immutable once created; the ID is unique within a store.
type Transaction struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
}

// TransactionInput carries the caller-supplied fields of a new transaction.
type TransactionInput struct {
	Type        string
	Amount      decimal.Decimal
	Category    string
	Date        string
	Description string
}

// NewTransaction builds a Transaction from input with a freshly generated ID.
func NewTransaction(input TransactionInput) Transaction {
	return Transaction{
		ID:          uuid.New().String(),
		Type:        input.Type,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
		Description: strings.TrimSpace(input.Description),
	}
}

// IsIncome returns true if the transaction adds to the balance
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true if the transaction subtracts from the balance
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount returns the amount with the sign it contributes to the balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// ParsedDate parses Date using DateLayout.
func (t Transaction) ParsedDate() (time.Time, error) {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// Validate checks the shape of a persisted record.
// Date and description are display fields and are not checked here.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidAmount(t.Amount) {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrMissingCategory
	}

	return nil
}

// Validate reports whether the input can be accepted by a store.
func (in TransactionInput) Validate() error {
	if !IsValidTransactionType(in.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidAmount(in.Amount) {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(in.Category) == "" {
		return ErrMissingCategory
	}

	return nil
}

// IsValidAmount reports whether d is positive, below MaxAmount and has at most
// MaxAmountDecimals fractional digits.
func IsValidAmount(d decimal.Decimal) bool {
	// bound the exponent first: comparing against MaxAmount rescales both operands
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return false
	}
	if !d.IsPositive() || !d.LessThan(MaxAmount) {
		return false
	}
	return d.Equal(d.Truncate(MaxAmountDecimals))
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// Today returns the current local date formatted with DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
