package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/service"
	"tally/internal/ui/views"
)

func NewShowCmd(svc *service.TransactionService) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show a single transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			tx, err := svc.GetByID(id)
			if err != nil {
				return err
			}

			return views.RenderTransactionDetail(tx)
		},
	}
}

func parseID(arg string) (int64, error) {
	var id int64
	if _, err := fmt.Sscanf(arg, "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid transaction ID: %s", arg)
	}
	return id, nil
}
