package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"procuptime/internal/parse"
	"procuptime/internal/schema"
	"procuptime/internal/uptime"
)

// errUnavailable makes the show command exit non-zero after its report is printed.
var errUnavailable = errors.New("uptime unavailable")

var (
	strategyName string
	async        bool
	timeout      time.Duration
	output       string
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the uptime of this process",
	Long: `The show command queries the uptime of the procuptime process once and
prints a report. If the uptime cannot be determined the report says so and
the command exits with status 1; an unknown uptime is never printed as zero.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&strategyName, "strategy", "auto", "measurement strategy (see 'procuptime strategies')")
	showCmd.Flags().BoolVar(&async, "async", false, "query through the asynchronous interface")
	showCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "give up waiting for an asynchronous result after this long")
	showCmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json, yaml or text")
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := parse.NormalizeOutput(output)
	if err != nil {
		return err
	}
	if err := parse.ValidateTimeout(timeout); err != nil {
		return err
	}
	strategy, err := uptime.ParseStrategy(strategyName)
	if err != nil {
		return fmt.Errorf("invalid --strategy: %w", err)
	}

	reader, err := uptime.NewReader(strategy, uptime.WithLogger(log))
	if err != nil {
		return fmt.Errorf("invalid --strategy: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var d time.Duration
	var ok bool
	if async {
		select {
		case res := <-uptime.Async(ctx, reader):
			d, ok = res.Uptime, res.OK
		case <-ctx.Done():
			log.Info("gave up waiting for uptime", "timeout", timeout.String())
		}
	} else {
		d, ok = reader.Uptime(ctx)
	}

	report := schema.NewUptimeReport(reader.Strategy(), async, d, ok, time.Now())
	if err := schema.Render(cmd.OutOrStdout(), format, report); err != nil {
		return err
	}
	if !ok {
		return errUnavailable
	}
	return nil
}
