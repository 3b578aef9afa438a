package cmd

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tally/internal/errhandler"
	"tally/internal/model"
	"tally/internal/service"
	"tally/internal/ui/prompts"
	"tally/internal/ui/views"
)

type addFlags struct {
	Amount      float64
	Type        string
	Category    string
	Description string
	Date        string
	Tags        string
}

type addRunner struct {
	svc   *service.TransactionService
	flags *addFlags
}

func NewAddCmd(svc *service.TransactionService) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"a", "new"},
		Short:   "Record a new transaction",
		Long: `Record a new income or expense transaction.

Without flags this opens an interactive form. Pass --amount together with
--category and --description to record non-interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Flags().Changed("amount"))
		},
	}

	cmd.Flags().Float64VarP(&flags.Amount, "amount", "a", 0, "Transaction amount")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type: income or expense")
	cmd.Flags().StringVarP(&flags.Category, "category", "C", "", "Category label")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Description text")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&flags.Tags, "tags", "", "Comma-separated tags")

	return cmd
}

func (r *addRunner) Run(nonInteractive bool) error {
	var (
		in  model.TransactionInput
		err error
	)

	if nonInteractive {
		in, err = r.inputFromFlags()
	} else {
		in, err = prompts.PromptTransaction(model.TransactionInput{
			Type: model.TransactionType(viper.GetString("defaults.type")),
		})
	}
	if err != nil {
		errhandler.HandleError(err)
		return nil
	}

	tx, err := r.svc.Create(in)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d recorded\n", tx.ID)
	return views.RenderTransactionDetail(tx)
}

func (r *addRunner) inputFromFlags() (model.TransactionInput, error) {
	typeStr := r.flags.Type
	if typeStr == "" {
		typeStr = viper.GetString("defaults.type")
	}
	txType, err := model.ParseTransactionType(typeStr)
	if err != nil {
		return model.TransactionInput{}, err
	}

	date := r.flags.Date
	if date == "" {
		date = todayDate()
	}

	return model.TransactionInput{
		Amount:      r.flags.Amount,
		Type:        txType,
		Category:    r.flags.Category,
		Description: r.flags.Description,
		Date:        date,
		Tags:        model.SplitTags(r.flags.Tags),
	}, nil
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}
