package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tally/internal/errhandler"
	"tally/internal/model"
	"tally/internal/service"
	"tally/internal/ui/prompts"
	"tally/internal/ui/views"
)

func NewEditCmd(svc *service.TransactionService) *cobra.Command {
	return &cobra.Command{
		Use:     "edit <transaction-id>",
		Aliases: []string{"update"},
		Short:   "Edit a transaction",
		Long: `Edit a transaction through the interactive form.

Every field except the id is replaced by the submitted values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := svc.GetByID(id)
			if err != nil {
				return err
			}

			in, err := prompts.PromptTransaction(model.TransactionInput{
				Amount:      current.Amount,
				Type:        current.Type,
				Category:    current.Category,
				Description: current.Description,
				Date:        current.Date,
				Tags:        current.Tags,
			})
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			tx, err := svc.Update(id, in)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Transaction #%d updated\n", tx.ID)
			return views.RenderTransactionDetail(tx)
		},
	}
}
