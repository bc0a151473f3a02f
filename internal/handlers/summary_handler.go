package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves aggregate views over the transaction list
type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
	now            func() time.Time
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService services.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService, now: time.Now}
}

// GetSummary returns totals, balance and per-category expenses
// @Summary Get summary
// @Tags Summary
// @Produce json
// @Success 200 {object} models.Summary
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.summaryService.GetSummary())
}

// GetMonthlySummary returns totals for one calendar month, the current month by default
// @Summary Get monthly summary
// @Tags Summary
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} models.MonthlySummary
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid period"
// @Router /summary/monthly [get]
func (h *SummaryHandler) GetMonthlySummary(c echo.Context) error {
	var query dto.MonthlySummaryQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("year and month must be integers"))
	}

	if err := c.Validate(&query); err != nil {
		return SendValidationError(c, err)
	}

	now := h.now()
	if query.Year == 0 {
		query.Year = now.Year()
	}
	if query.Month == 0 {
		query.Month = int(now.Month())
	}

	summary, err := h.summaryService.GetMonthlySummary(query.Year, query.Month)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidPeriod) {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetCategoryBreakdown returns expense categories ordered by amount with their percentage share
// @Summary Get category breakdown
// @Tags Summary
// @Produce json
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Router /summary/categories [get]
func (h *SummaryHandler) GetCategoryBreakdown(c echo.Context) error {
	summary := h.summaryService.GetSummary()

	return c.JSON(http.StatusOK, dto.CategoryBreakdownResponse{
		Categories:    h.summaryService.GetCategoryBreakdown(),
		TotalExpenses: summary.TotalExpenses.String(),
	})
}

// ListCategories returns the fixed category list
// @Summary List categories
// @Tags Summary
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /categories [get]
func (h *SummaryHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories: models.AllCategories(),
		Income:     models.IncomeCategories(),
		Expense:    models.ExpenseCategories(),
	})
}
