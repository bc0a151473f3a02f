package models

// TransactionFilters contains filtering options for transaction listings
type TransactionFilters struct {
	Type     string
	Category string
	Month    string // YYYY-MM
	Limit    int
}

// Apply returns the transactions matching the filters, preserving order.
// A zero Limit means no limit.
func (f TransactionFilters) Apply(transactions []Transaction) []Transaction {
	result := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Month != "" && !inMonth(t.Date, f.Month) {
			continue
		}
		result = append(result, t)
		if f.Limit > 0 && len(result) == f.Limit {
			break
		}
	}
	return result
}

func inMonth(date, month string) bool {
	return len(date) >= len(month) && date[:len(month)] == month
}
