package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/model"
)

func seedLedger() []model.Transaction {
	return []model.Transaction{
		{ID: 1, Amount: 1250.00, Type: model.TypeIncome, Category: "Salary", Description: "Monthly salary"},
		{ID: 2, Amount: 45.50, Type: model.TypeExpense, Category: "Food", Description: "Grocery shopping"},
		{ID: 3, Amount: 120.00, Type: model.TypeExpense, Category: "Transport", Description: "Gas station"},
	}
}

func ids(items []model.Transaction) []int64 {
	out := make([]int64, 0, len(items))
	for _, t := range items {
		out = append(out, t.ID)
	}
	return out
}

func TestParseTypeFilter(t *testing.T) {
	for input, want := range map[string]TypeFilter{
		"":        FilterAll,
		"all":     FilterAll,
		"Income":  FilterIncome,
		"EXPENSE": FilterExpense,
	} {
		got, err := ParseTypeFilter(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseTypeFilter("transfer")
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}

func TestApplyTypeFilter(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, ids(Apply(seedLedger(), FilterAll, "")))
	assert.Equal(t, []int64{1}, ids(Apply(seedLedger(), FilterIncome, "")))
	assert.Equal(t, []int64{2, 3}, ids(Apply(seedLedger(), FilterExpense, "")))
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, []int64{3}, ids(Apply(seedLedger(), FilterAll, "GAS")))
	assert.Equal(t, []int64{3}, ids(Apply(seedLedger(), FilterAll, "gas")))
}

func TestApplySearchMatchesCategoryToo(t *testing.T) {
	assert.Equal(t, []int64{2}, ids(Apply(seedLedger(), FilterAll, "food")))
}

func TestApplyCombinesPredicatesWithAnd(t *testing.T) {
	// "salary" matches record 1, but the expense filter excludes it.
	assert.Empty(t, Apply(seedLedger(), FilterExpense, "salary"))
	assert.Equal(t, []int64{3}, ids(Apply(seedLedger(), FilterExpense, "station")))
}

func TestApplyPreservesOrder(t *testing.T) {
	ledger := []model.Transaction{
		{ID: 5, Type: model.TypeExpense, Description: "aa", Category: "x"},
		{ID: 2, Type: model.TypeExpense, Description: "ab", Category: "x"},
		{ID: 9, Type: model.TypeExpense, Description: "ac", Category: "x"},
	}

	assert.Equal(t, []int64{5, 2, 9}, ids(Apply(ledger, FilterExpense, "a")))
}

func TestApplyNoMatches(t *testing.T) {
	assert.Empty(t, Apply(seedLedger(), FilterAll, "no such thing"))
	assert.Empty(t, Apply(nil, FilterAll, ""))
}
