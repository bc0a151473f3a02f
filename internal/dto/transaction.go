package dto

import (
	"encoding/json"
	"strings"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents the request payload for recording a transaction.
// Amount accepts a JSON number or a numeric string.
type CreateTransactionRequest struct {
	Type        string      `json:"type" validate:"required,transaction_type"`
	Amount      json.Number `json:"amount" validate:"required,positive_amount"`
	Category    string      `json:"category" validate:"required,category"`
	Date        string      `json:"date" validate:"omitempty,iso_date"`
	Description string      `json:"description" validate:"max=100"`
}

// Normalize trims surrounding whitespace so validation sees the stored values
func (r *CreateTransactionRequest) Normalize() {
	r.Type = strings.TrimSpace(r.Type)
	r.Amount = json.Number(strings.TrimSpace(r.Amount.String()))
	r.Category = strings.TrimSpace(r.Category)
	r.Date = strings.TrimSpace(r.Date)
	r.Description = strings.TrimSpace(r.Description)
}

// ToInput converts a validated request into a store input.
// An empty date is left empty so the store applies today's date.
func (r CreateTransactionRequest) ToInput() (models.TransactionInput, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount.String()))
	if err != nil || !models.IsValidAmount(amount) {
		return models.TransactionInput{}, models.ErrInvalidAmount
	}

	return models.TransactionInput{
		Type:        r.Type,
		Amount:      amount,
		Category:    r.Category,
		Date:        r.Date,
		Description: strings.TrimSpace(r.Description),
	}, nil
}

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	Type     string `query:"type" validate:"omitempty,transaction_type"`
	Category string `query:"category" validate:"omitempty,category"`
	Month    string `query:"month" validate:"omitempty,year_month"`
	Limit    int    `query:"limit" validate:"min=0"`
}

// ToModel converts the query filters into model filters
func (f TransactionFilters) ToModel() models.TransactionFilters {
	return models.TransactionFilters{
		Type:     f.Type,
		Category: f.Category,
		Month:    f.Month,
		Limit:    f.Limit,
	}
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	Total        int                  `json:"total"`
}
