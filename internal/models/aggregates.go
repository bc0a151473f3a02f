package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Aggregates are the derived totals of a transaction sequence.
// They are recomputed from the sequence on every read and never stored.
type Aggregates struct {
	TotalIncome        decimal.Decimal            `json:"total_income"`
	TotalExpenses      decimal.Decimal            `json:"total_expenses"`
	Balance            decimal.Decimal            `json:"balance"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
}

// Summary is the aggregate view served to collaborators.
type Summary struct {
	Aggregates
	TransactionCount int  `json:"transaction_count"`
	Loaded           bool `json:"loaded"`
}

// CategoryShare is one row of the expense breakdown.
type CategoryShare struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int64           `json:"percentage"`
}

// MonthlySummary holds the totals of one calendar month.
type MonthlySummary struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TransactionCount int             `json:"transaction_count"`
}

// ComputeAggregates sums the sequence into totals, balance and per-category expenses.
// Categories whose expense sum is not positive are omitted.
func ComputeAggregates(transactions []Transaction) Aggregates {
	agg := Aggregates{
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	for _, t := range transactions {
		switch t.Type {
		case TransactionTypeIncome:
			agg.TotalIncome = agg.TotalIncome.Add(t.Amount)
		case TransactionTypeExpense:
			agg.TotalExpenses = agg.TotalExpenses.Add(t.Amount)
			agg.ExpensesByCategory[t.Category] = agg.ExpensesByCategory[t.Category].Add(t.Amount)
		}
	}

	for category, amount := range agg.ExpensesByCategory {
		if !amount.IsPositive() {
			delete(agg.ExpensesByCategory, category)
		}
	}

	agg.Balance = agg.TotalIncome.Sub(agg.TotalExpenses)
	return agg
}

// CategoryBreakdown orders ExpensesByCategory by amount, largest first, with each
// category's whole-number share of TotalExpenses.
func (a Aggregates) CategoryBreakdown() []CategoryShare {
	shares := make([]CategoryShare, 0, len(a.ExpensesByCategory))
	for category, amount := range a.ExpensesByCategory {
		share := CategoryShare{Category: category, Amount: amount}
		if a.TotalExpenses.IsPositive() {
			share.Percentage = amount.Mul(decimal.NewFromInt(100)).Div(a.TotalExpenses).Round(0).IntPart()
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Amount.GreaterThan(shares[j].Amount)
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}

// ComputeMonthlySummary totals the transactions dated within year/month.
// Records with an unparseable date are not counted.
func ComputeMonthlySummary(transactions []Transaction, year, month int) MonthlySummary {
	summary := MonthlySummary{
		Year:          year,
		Month:         month,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, t := range transactions {
		d, err := t.ParsedDate()
		if err != nil || d.Year() != year || int(d.Month()) != month {
			continue
		}
		summary.TransactionCount++
		if t.IsIncome() {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		} else if t.IsExpense() {
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
		}
	}

	return summary
}
