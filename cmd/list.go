package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tally/internal/query"
	"tally/internal/service"
	"tally/internal/ui/views"
)

type listFlags struct {
	Type   string
	Search string
}

type listRunner struct {
	svc   *service.TransactionService
	flags *listFlags
}

func NewListCmd(svc *service.TransactionService) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions",
		Long: `List transactions from the ledger.

Records can be narrowed by type (--type income|expense) and by a
case-insensitive search over description and category (--search). The two
filters combine; listing order follows insertion order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "all", "Filter by type: all, income or expense")
	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Search description and category")

	return cmd
}

func (r *listRunner) Run() error {
	filter, err := query.ParseTypeFilter(r.flags.Type)
	if err != nil {
		return err
	}

	items, err := r.svc.FilterAndSearch(filter, r.flags.Search)
	if err != nil {
		return err
	}

	if r.flags.Search != "" || filter != query.FilterAll {
		pterm.Info.Printf("Showing %s transactions matching %q\n\n", filter, r.flags.Search)
	}

	return views.NewTransactionListView().Render(items)
}
