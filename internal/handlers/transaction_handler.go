package handlers

import (
	"log/slog"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	store services.TransactionStoreInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(store services.TransactionStoreInterface) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// ListTransactions returns the transactions newest first, optionally filtered
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param type query string false "income or expense"
// @Param category query string false "Category name"
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param limit query int false "Maximum number of results (0 for all)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filters"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var filters dto.TransactionFilters
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filters); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("query parameters could not be parsed"))
	}

	if err := c.Validate(&filters); err != nil {
		return SendValidationError(c, err)
	}

	all := h.store.Transactions()
	matched := filters.ToModel().Apply(all)

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: matched,
		Count:        len(matched),
		Total:        len(all),
	})
}

// CreateTransaction records a new income or expense
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid body"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Rejected by the store"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_004 - Store not loaded"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	if !h.store.IsLoaded() {
		return SendError(c, errors.SystemNotLoaded)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("request body must be a JSON object"))
	}

	req.Normalize()
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	input, err := req.ToInput()
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	transaction, ok := h.store.Add(input)
	if !ok {
		return SendError(c, errors.TransactionValidationFailed)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// DeleteTransaction removes a transaction by id.
// Deleting an unknown id succeeds with no effect.
// @Summary Delete transaction
// @Tags Transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_004 - Store not loaded"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	if !h.store.IsLoaded() {
		return SendError(c, errors.SystemNotLoaded)
	}

	id := c.Param("id")
	if !h.store.Remove(id) {
		slog.Debug("delete of unknown transaction", "trace_id", getTraceID(c), "id", id)
	}

	return c.NoContent(http.StatusNoContent)
}
