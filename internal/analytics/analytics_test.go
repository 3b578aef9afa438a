package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/model"
)

func seedLedger() []model.Transaction {
	return []model.Transaction{
		{ID: 1, Amount: 1250.00, Type: model.TypeIncome, Category: "Salary", Description: "Monthly salary", Date: "2026-01-15", Tags: []string{"work", "regular"}},
		{ID: 2, Amount: 45.50, Type: model.TypeExpense, Category: "Food", Description: "Grocery shopping", Date: "2026-01-14", Tags: []string{"groceries"}},
		{ID: 3, Amount: 120.00, Type: model.TypeExpense, Category: "Transport", Description: "Gas station", Date: "2026-01-13", Tags: []string{"car", "fuel"}},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(seedLedger())

	assert.InDelta(t, 1250.00, s.TotalIncome, 1e-9)
	assert.InDelta(t, 165.50, s.TotalExpense, 1e-9)
	assert.InDelta(t, 1084.50, s.Balance, 1e-9)
	assert.Equal(t, 3, s.TransactionCount)

	require.Len(t, s.CategoryBreakdown, 3)
	assert.InDelta(t, 1250.00, s.CategoryBreakdown["Salary"], 1e-9)
	assert.InDelta(t, 45.50, s.CategoryBreakdown["Food"], 1e-9)
	assert.InDelta(t, 120.00, s.CategoryBreakdown["Transport"], 1e-9)
}

func TestSummarizeEmptyLedger(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.TotalIncome)
	assert.Zero(t, s.TotalExpense)
	assert.Zero(t, s.Balance)
	assert.Zero(t, s.TransactionCount)
	assert.Empty(t, s.CategoryBreakdown)
}

// A category holding both income and expense records sums the two together
// without netting.
func TestSummarizeMixedTypeCategory(t *testing.T) {
	ledger := []model.Transaction{
		{ID: 1, Amount: 100, Type: model.TypeIncome, Category: "Side", Description: "Refund"},
		{ID: 2, Amount: 40, Type: model.TypeExpense, Category: "Side", Description: "Parts"},
	}

	s := Summarize(ledger)

	assert.InDelta(t, 140.0, s.CategoryBreakdown["Side"], 1e-9)
	assert.InDelta(t, 60.0, s.Balance, 1e-9)
}

func TestSummarizeInvariants(t *testing.T) {
	ledgers := [][]model.Transaction{
		nil,
		seedLedger(),
		append(seedLedger(), model.Transaction{ID: 4, Amount: 100, Type: model.TypeExpense, Category: "Food", Description: "Coffee", Date: "2026-01-16", Tags: []string{}}),
	}

	for _, ledger := range ledgers {
		s := Summarize(ledger)

		assert.InDelta(t, s.TotalIncome-s.TotalExpense, s.Balance, 1e-9)

		var categoryTotal float64
		for _, v := range s.CategoryBreakdown {
			categoryTotal += v
		}
		assert.InDelta(t, s.TotalIncome+s.TotalExpense, categoryTotal, 1e-9)
	}
}
