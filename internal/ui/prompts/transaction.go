package prompts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tally/internal/model"
)

// PromptTransaction walks through the full transaction form. Prefill
// carries either the configured defaults (add) or the current record
// (edit).
func PromptTransaction(prefill model.TransactionInput) (model.TransactionInput, error) {
	var in model.TransactionInput

	amountDefault := ""
	if prefill.Amount > 0 {
		amountDefault = model.FormatAmount(prefill.Amount)
	}
	amountStr, err := PromptAmount(amountDefault)
	if err != nil {
		return in, err
	}
	in.Amount, err = ParseAmount(amountStr)
	if err != nil {
		return in, err
	}

	typeStr, err := PromptSelect("Transaction type:", []string{"expense", "income"}, string(prefill.Type))
	if err != nil {
		return in, err
	}
	in.Type = model.TransactionType(typeStr)

	in.Category, err = PromptInput("Category:", prefill.Category, RequiredValidator("category is required"))
	if err != nil {
		return in, err
	}

	in.Description, err = PromptInput("Description:", prefill.Description, RequiredValidator("description is required"))
	if err != nil {
		return in, err
	}

	in.Date, err = PromptDate(prefill.Date)
	if err != nil {
		return in, err
	}

	tagsStr, err := PromptInput("Tags (comma-separated):", strings.Join(prefill.Tags, ", "), nil)
	if err != nil {
		return in, err
	}
	in.Tags = model.SplitTags(tagsStr)

	return in, nil
}

// PromptAmount prompts for a non-negative decimal amount.
func PromptAmount(defaultValue string) (string, error) {
	return PromptInput("Amount:", defaultValue, func(s string) error {
		if s == "" && defaultValue != "" {
			return nil
		}
		_, err := ParseAmount(s)
		return err
	})
}

// PromptDate prompts for a YYYY-MM-DD date, defaulting to today.
func PromptDate(defaultDate string) (string, error) {
	if defaultDate == "" {
		defaultDate = time.Now().Format("2006-01-02")
	}

	return PromptInput("Date (YYYY-MM-DD):", defaultDate, func(s string) error {
		if s == "" {
			return nil
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Errorf("date must look like 2026-01-15")
		}
		return nil
	})
}

// ParseAmount converts user input into a non-negative amount.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %q", s)
	}
	if amount < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return amount, nil
}
