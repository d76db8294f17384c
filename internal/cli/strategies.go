package cli

import (
	"github.com/spf13/cobra"

	"procuptime/internal/parse"
	"procuptime/internal/schema"
	"procuptime/internal/uptime"
)

var strategiesOutput string

// strategiesCmd lists the strategies compiled in for this platform.
var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the measurement strategies available on this platform",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parse.NormalizeOutput(strategiesOutput)
		if err != nil {
			return err
		}
		report := schema.NewStrategiesReport(uptime.DefaultStrategy(), uptime.Strategies())
		return schema.Render(cmd.OutOrStdout(), format, report)
	},
}

func init() {
	strategiesCmd.Flags().StringVarP(&strategiesOutput, "output", "o", "json", "output format: json, yaml or text")
}
