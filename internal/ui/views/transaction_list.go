package views

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"tally/internal/model"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(items []model.Transaction) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Category", "Description", "Amount", "Tags"},
	}

	for _, t := range items {
		amount := model.FormatAmount(t.Amount)

		var coloredType, coloredAmount string
		switch t.Type {
		case model.TypeExpense:
			coloredType = pterm.Red("expense")
			coloredAmount = pterm.Red(amount)
		case model.TypeIncome:
			coloredType = pterm.Green("income")
			coloredAmount = pterm.Green(amount)
		default:
			coloredType = string(t.Type)
			coloredAmount = amount
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", t.ID),
			t.Date,
			coloredType,
			t.Category,
			t.Description,
			coloredAmount,
			strings.Join(t.Tags, ", "),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
