// Package cli provides command-line interface implementation for procuptime.
package cli

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"procuptime/internal/config"
	"procuptime/internal/logger"
)

var (
	logFile string
	verbose bool

	cfg   *config.Config
	log   = logr.Discard()
	flush = func() {}
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "procuptime",
	Short: "Report how long this process has been running",
	Long: `procuptime measures the wall-clock uptime of the calling process using
the native facility of the platform (process times on Windows, /proc on Linux,
sysctl via gopsutil elsewhere) or, on request, the ps utility.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flush()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Show help and exit 0 if no subcommand is provided
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file (rotated at 10 MB)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log why a measurement was unavailable")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(compareCmd)
}

// setup loads configuration, lets it fill in flags the user did not pass, and
// builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.New()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	flags := cmd.Flags()
	fill := func(name, value string) error {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			return nil
		}
		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("invalid configuration for --%s: %w", name, err)
		}
		return nil
	}
	for name, value := range map[string]string{
		"log-file": cfg.LogFile(),
		"verbose":  fmt.Sprint(cfg.Verbose()),
		"strategy": cfg.Strategy().String(),
		"timeout":  cfg.Timeout().String(),
		"output":   cfg.Output(),
		"parallel": fmt.Sprint(cfg.Parallel()),
	} {
		if err := fill(name, value); err != nil {
			return err
		}
	}

	log, flush = logger.New(logger.Options{
		LogFile: logFile,
		Verbose: verbose,
		Stderr:  cmd.ErrOrStderr(),
	})
	return nil
}
