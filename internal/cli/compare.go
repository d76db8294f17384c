package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"procuptime/internal/core"
	"procuptime/internal/parse"
	"procuptime/internal/schema"
	"procuptime/internal/uptime"
)

var (
	compareParallel int
	compareTimeout  time.Duration
	compareOutput   string
)

// compareCmd runs every available strategy side by side.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Measure uptime with every available strategy and compare the results",
	Long: `The compare command queries all strategies available on this platform
concurrently, each bounded by --timeout, and reports the answer of each one.
Strategies that fail or time out are reported as unavailable.`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntVar(&compareParallel, "parallel", 4, "maximum concurrent strategies (1-64)")
	compareCmd.Flags().DurationVar(&compareTimeout, "timeout", 5*time.Second, "per-strategy timeout")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "json", "output format: json, yaml or text")
}

func runCompare(cmd *cobra.Command, args []string) error {
	format, err := parse.NormalizeOutput(compareOutput)
	if err != nil {
		return err
	}
	if err := parse.ValidateParallel(compareParallel); err != nil {
		return err
	}
	if err := parse.ValidateTimeout(compareTimeout); err != nil {
		return err
	}

	run := core.NewRun(compareParallel, compareTimeout, uptime.SystemClock{}, log)
	for _, s := range uptime.Strategies() {
		reader, err := uptime.NewReader(s, uptime.WithLogger(log))
		if err != nil {
			return fmt.Errorf("failed to build %s reader: %w", s, err)
		}
		run.Register(reader)
	}

	log.V(1).Info("comparing strategies", "count", len(uptime.Strategies()), "parallel", run.Parallelism(), "timeout", compareTimeout.String())
	results := run.CollectAll(cmd.Context())

	report := schema.NewCompareReport(run.Parallelism(), compareTimeout, results, time.Now())
	return schema.Render(cmd.OutOrStdout(), format, report)
}
