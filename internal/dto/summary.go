package dto

import "finance-tracker/internal/models"

// MonthlySummaryQuery selects a calendar month; zero values mean the current month
type MonthlySummaryQuery struct {
	Year  int `query:"year" validate:"omitempty,min=1970,max=9999"`
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
}

// CategoryBreakdownResponse lists expense categories with their share of total expenses
type CategoryBreakdownResponse struct {
	Categories    []models.CategoryShare `json:"categories"`
	TotalExpenses string                 `json:"total_expenses"`
}

// CategoriesResponse lists the fixed categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Income     []string `json:"income"`
	Expense    []string `json:"expense"`
}

// HealthResponse reports liveness and readiness
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Version string            `json:"version,omitempty"`
}
