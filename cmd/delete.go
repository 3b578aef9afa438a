package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tally/internal/errhandler"
	"tally/internal/model"
	"tally/internal/service"
)

// surveyOpts contains custom options for all survey prompts
var surveyOpts = []survey.AskOpt{
	survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	}),
}

func NewDeleteCmd(svc *service.TransactionService) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:     "delete <transaction-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Long:    `Delete a transaction from the ledger. This action cannot be undone.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runDelete(svc, id, assumeYes)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(svc *service.TransactionService, id int64, assumeYes bool) error {
	tx, err := svc.GetByID(id)
	if err != nil {
		return err
	}

	if !assumeYes {
		pterm.Warning.Printf("About to delete transaction #%d:\n", tx.ID)
		deletionInfo := pterm.TableData{
			{"Date", tx.Date},
			{"Type", string(tx.Type)},
			{"Description", tx.Description},
			{"Amount", model.FormatAmount(tx.Amount)},
		}
		pterm.DefaultTable.WithData(deletionInfo).Render()

		pterm.Warning.Println("This action cannot be undone!")

		var confirmation bool
		confirmPrompt := &survey.Confirm{
			Message: "Do you want to delete this transaction?",
			Default: false,
		}
		if err := survey.AskOne(confirmPrompt, &confirmation, surveyOpts...); err != nil {
			errhandler.HandleError(err)
			return nil
		}

		if !confirmation {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := svc.Delete(id); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d deleted successfully\n", id)
	return nil
}
