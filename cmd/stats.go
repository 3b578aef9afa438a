package cmd

import (
	"github.com/spf13/cobra"

	"tally/internal/service"
	"tally/internal/ui/views"
)

func NewStatsCmd(svc *service.TransactionService) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"analytics"},
		Short:   "Show ledger analytics",
		Long: `Show aggregate figures computed from the current ledger:
total income, total expense, balance, transaction count and the
per-category amount breakdown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := svc.Analytics()
			if err != nil {
				return err
			}
			return views.RenderAnalytics(summary)
		},
	}
}
