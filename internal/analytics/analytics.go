// Package analytics derives aggregate figures from a ledger snapshot.
// Every call recomputes from scratch; nothing is cached, so there is no
// stale state to invalidate.
package analytics

import "tally/internal/model"

// Summary holds the derived figures for one snapshot.
type Summary struct {
	TotalIncome       float64            `json:"totalIncome"`
	TotalExpense      float64            `json:"totalExpense"`
	Balance           float64            `json:"balance"`
	TransactionCount  int                `json:"transactionCount"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
}

// Summarize totals the snapshot. The category breakdown adds income and
// expense amounts together within a category, without netting; only
// categories present in the snapshot get a key.
func Summarize(ledger []model.Transaction) Summary {
	s := Summary{
		TransactionCount:  len(ledger),
		CategoryBreakdown: make(map[string]float64),
	}

	for _, t := range ledger {
		switch t.Type {
		case model.TypeIncome:
			s.TotalIncome += t.Amount
		case model.TypeExpense:
			s.TotalExpense += t.Amount
		}
		s.CategoryBreakdown[t.Category] += t.Amount
	}

	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}
