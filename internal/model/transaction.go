package model

import (
	"fmt"
	"math"
	"strings"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType converts user input into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", NewValidationError("unknown transaction type: %q (must be income or expense)", s)
	}
}

// Transaction is a single ledger entry. The ID is assigned by the store
// and never supplied by the caller.
type Transaction struct {
	ID          int64           `json:"id"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"` // YYYY-MM-DD, no timezone semantics
	Tags        []string        `json:"tags"`
}

// TransactionInput carries the caller-supplied fields for create and update.
type TransactionInput struct {
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Tags        []string        `json:"tags"`
}

func (in TransactionInput) Validate() error {
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return NewValidationError("amount must be a finite number")
	}
	if in.Amount < 0 {
		return NewValidationError("amount must not be negative: %.2f", in.Amount)
	}
	if in.Type != TypeIncome && in.Type != TypeExpense {
		return NewValidationError("unknown transaction type: %q (must be income or expense)", string(in.Type))
	}
	if strings.TrimSpace(in.Category) == "" {
		return NewValidationError("category is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return NewValidationError("description is required")
	}
	return nil
}

// NewTransaction builds a Transaction from validated input. Tag tokens are
// kept in order, trimmed, with empty tokens dropped; duplicates survive.
func NewTransaction(id int64, in TransactionInput) Transaction {
	return Transaction{
		ID:          id,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		Tags:        NormalizeTags(in.Tags),
	}
}

// NormalizeTags trims every token and drops the empty ones.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SplitTags parses a comma-separated tag string into normalized tokens.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(s, ","))
}

// FormatAmount renders an amount for display with two decimals.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
