package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() TransactionInput {
	return TransactionInput{
		Amount:      45.50,
		Type:        TypeExpense,
		Category:    "Food",
		Description: "Grocery shopping",
		Date:        "2026-01-14",
		Tags:        []string{"groceries"},
	}
}

func TestTransactionInputValidate(t *testing.T) {
	require.NoError(t, validInput().Validate())

	t.Run("zero amount is allowed", func(t *testing.T) {
		in := validInput()
		in.Amount = 0
		require.NoError(t, in.Validate())
	})

	t.Run("negative amount", func(t *testing.T) {
		in := validInput()
		in.Amount = -5
		err := in.Validate()
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("non-finite amounts", func(t *testing.T) {
		for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			in := validInput()
			in.Amount = bad
			assert.True(t, IsValidation(in.Validate()))
		}
	})

	t.Run("blank category", func(t *testing.T) {
		in := validInput()
		in.Category = "   "
		assert.True(t, IsValidation(in.Validate()))
	})

	t.Run("blank description", func(t *testing.T) {
		in := validInput()
		in.Description = ""
		assert.True(t, IsValidation(in.Validate()))
	})

	t.Run("unknown type", func(t *testing.T) {
		in := validInput()
		in.Type = "transfer"
		err := in.Validate()
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestParseTransactionType(t *testing.T) {
	for input, want := range map[string]TransactionType{
		"income":   TypeIncome,
		"expense":  TypeExpense,
		" Income ": TypeIncome,
		"EXPENSE":  TypeExpense,
	} {
		got, err := ParseTransactionType(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseTransactionType("transfer")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"food", "monthly", "urgent"}, SplitTags("food, monthly , urgent"))
	assert.Equal(t, []string{}, SplitTags("  "))
	assert.Equal(t, []string{"car"}, SplitTags(",car,,"))
	// duplicates are kept
	assert.Equal(t, []string{"x", "x"}, SplitTags("x, x"))
}

func TestNewTransactionNormalizesTags(t *testing.T) {
	in := validInput()
	in.Tags = []string{" work ", "", "regular"}

	tx := NewTransaction(7, in)

	assert.Equal(t, int64(7), tx.ID)
	assert.Equal(t, []string{"work", "regular"}, tx.Tags)
	assert.Equal(t, in.Amount, tx.Amount)
	assert.Equal(t, in.Type, tx.Type)
}

func TestErrorTaxonomy(t *testing.T) {
	assert.True(t, IsNotFound(&NotFoundError{ID: 2}))
	assert.False(t, IsNotFound(NewValidationError("nope")))
	assert.Equal(t, "transaction 2 not found", (&NotFoundError{ID: 2}).Error())
}
