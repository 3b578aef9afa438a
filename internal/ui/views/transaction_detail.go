package views

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"tally/internal/model"
)

func RenderTransactionDetail(t model.Transaction) error {
	pterm.DefaultSection.Printf("Transaction #%d", t.ID)

	tags := strings.Join(t.Tags, ", ")
	if tags == "" {
		tags = "-"
	}

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", t.ID)},
		{"Date", t.Date},
		{"Type", string(t.Type)},
		{"Category", t.Category},
		{"Description", t.Description},
		{"Amount", model.FormatAmount(t.Amount)},
		{"Tags", tags},
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
