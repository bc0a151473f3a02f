package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionFilters_Apply(t *testing.T) {
	txs := []Transaction{
		tx("4", TransactionTypeExpense, "20", CategoryFood, "2024-04-02"),
		tx("3", TransactionTypeExpense, "30", CategoryRent, "2024-03-20"),
		tx("2", TransactionTypeExpense, "15", CategoryFood, "2024-03-10"),
		tx("1", TransactionTypeIncome, "1000", CategorySalary, "2024-03-01"),
	}

	ids := func(list []Transaction) []string {
		out := make([]string, 0, len(list))
		for _, t := range list {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []string{"4", "3", "2", "1"}, ids(TransactionFilters{}.Apply(txs)))
	assert.Equal(t, []string{"4", "3", "2"}, ids(TransactionFilters{Type: TransactionTypeExpense}.Apply(txs)))
	assert.Equal(t, []string{"4", "2"}, ids(TransactionFilters{Category: CategoryFood}.Apply(txs)))
	assert.Equal(t, []string{"3", "2", "1"}, ids(TransactionFilters{Month: "2024-03"}.Apply(txs)))
	assert.Equal(t, []string{"3", "2"}, ids(TransactionFilters{Month: "2024-03", Limit: 2}.Apply(txs)))
	assert.Empty(t, TransactionFilters{Category: CategoryGift}.Apply(txs))
}
