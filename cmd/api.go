package cmd

import (
	"github.com/spf13/cobra"

	"tally/internal/gateway"
	"tally/internal/ui/views"
)

type apiFlags struct {
	Data string
}

func NewAPICmd(gw *gateway.Gateway) *cobra.Command {
	flags := &apiFlags{}

	cmd := &cobra.Command{
		Use:   "api <METHOD> <endpoint>",
		Short: "Drive the ledger through its API surface",
		Long: `Drive the ledger through its logical API surface and print the
response envelope as JSON.

Examples:
  tally api GET /transactions
  tally api GET "/transactions?type=expense&search=gas"
  tally api GET /transactions/analytics
  tally api POST /transactions --data '{"amount":12.50,"type":"expense","category":"Food","description":"Lunch","date":"2026-01-16","tags":["work"]}'
  tally api PUT /transactions/3 --data '{"amount":120,"type":"expense","category":"Transport","description":"Gas station","date":"2026-01-13","tags":["car","fuel"]}'
  tally api DELETE /transactions/2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := gw.Dispatch(args[0], args[1], []byte(flags.Data))
			return views.RenderEnvelope(env)
		},
	}

	cmd.Flags().StringVarP(&flags.Data, "data", "d", "", "JSON payload for POST and PUT")

	return cmd
}
