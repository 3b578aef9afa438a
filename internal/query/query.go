// Package query filters a ledger snapshot by transaction type and a
// free-text search over description and category.
package query

import (
	"strings"

	"tally/internal/model"
)

type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = "income"
	FilterExpense TypeFilter = "expense"
)

// ParseTypeFilter converts user input into a TypeFilter. An empty string
// means no filtering.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch TypeFilter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll, "":
		return FilterAll, nil
	case FilterIncome:
		return FilterIncome, nil
	case FilterExpense:
		return FilterExpense, nil
	default:
		return "", model.NewValidationError("unknown type filter: %q (must be all, income or expense)", s)
	}
}

// Apply keeps the records that satisfy both predicates, preserving the
// snapshot's relative order. The search term matches case-insensitively
// against description or category; an empty term matches everything.
func Apply(ledger []model.Transaction, filter TypeFilter, searchTerm string) []model.Transaction {
	term := strings.ToLower(searchTerm)

	out := make([]model.Transaction, 0, len(ledger))
	for _, t := range ledger {
		if filter != FilterAll && string(t.Type) != string(filter) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Description), term) &&
			!strings.Contains(strings.ToLower(t.Category), term) {
			continue
		}
		out = append(out, t)
	}
	return out
}
