package services

import (
	"errors"

	"finance-tracker/internal/models"
)

var ErrInvalidPeriod = errors.New("month must be between 1 and 12")

type summaryService struct {
	store TransactionStoreInterface
}

// NewSummaryService creates a summary service reading from store
func NewSummaryService(store TransactionStoreInterface) SummaryServiceInterface {
	return &summaryService{store: store}
}

func (s *summaryService) GetSummary() models.Summary {
	transactions := s.store.Transactions()
	return models.Summary{
		Aggregates:       models.ComputeAggregates(transactions),
		TransactionCount: len(transactions),
		Loaded:           s.store.IsLoaded(),
	}
}

// GetMonthlySummary totals the calendar month by transaction date
func (s *summaryService) GetMonthlySummary(year, month int) (models.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return models.MonthlySummary{}, ErrInvalidPeriod
	}
	return models.ComputeMonthlySummary(s.store.Transactions(), year, month), nil
}

func (s *summaryService) GetCategoryBreakdown() []models.CategoryShare {
	return s.store.Aggregates().CategoryBreakdown()
}
