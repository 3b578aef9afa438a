package views

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"

	"tally/internal/analytics"
	"tally/internal/model"
)

func RenderAnalytics(s analytics.Summary) error {
	pterm.DefaultSection.Println("Ledger Summary")

	balance := model.FormatAmount(s.Balance)
	if s.Balance >= 0 {
		balance = pterm.Green(balance)
	} else {
		balance = pterm.Red(balance)
	}

	summaryData := pterm.TableData{
		{"Metric", "Value"},
		{"Total income", pterm.Green(model.FormatAmount(s.TotalIncome))},
		{"Total expense", pterm.Red(model.FormatAmount(s.TotalExpense))},
		{"Balance", balance},
		{"Transactions", fmt.Sprintf("%d", s.TransactionCount)},
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(summaryData).Render(); err != nil {
		return err
	}

	if len(s.CategoryBreakdown) == 0 {
		return nil
	}

	pterm.DefaultSection.Println("By Category")

	// Map iteration order is random; sort for stable output.
	categories := make([]string, 0, len(s.CategoryBreakdown))
	for c := range s.CategoryBreakdown {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	breakdownData := pterm.TableData{
		{"Category", "Amount"},
	}
	for _, c := range categories {
		breakdownData = append(breakdownData, []string{c, model.FormatAmount(s.CategoryBreakdown[c])})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(breakdownData).Render()
}
