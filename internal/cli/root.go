// Package cli implements the fleetcarbon command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/fleetcarbon/internal/config"
	"github.com/rshade/fleetcarbon/internal/report"
)

// rootOptions carries the resolved configuration to subcommands. It is
// populated by the root PersistentPreRunE.
type rootOptions struct {
	cfg *config.Config

	logLevel  string
	logFormat string
	output    string
}

// outputFormat returns the --output flag, or the configured default.
func (o *rootOptions) outputFormat(cmd *cobra.Command) string {
	if cmd.Flags().Changed("output") || o.cfg == nil {
		return o.output
	}
	return o.cfg.Output
}

// NewRootCmd creates the root Cobra command for the fleetcarbon CLI.
// It loads configuration from the environment, wires logging into the
// command context, and registers the run, delta, target and gwp subcommands.
func NewRootCmd(ver string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "fleetcarbon",
		Short:         "Fleet emission calculation and target tracking",
		Long:          "fleetcarbon: Compare theoretical and real vehicle emissions and track reduction targets",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			setupLogging(cmd, opts)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level: trace, debug, info, warn, error (overrides FLEETCARBON_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "",
		"log format: console or json (overrides FLEETCARBON_LOG_FORMAT)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", report.FormatJSON,
		"output format: json, yaml or table (overrides FLEETCARBON_OUTPUT)")

	cmd.AddCommand(
		newRunCmd(opts),
		newDeltaCmd(opts),
		newTargetCmd(opts),
		newGWPCmd(opts),
	)

	return cmd
}

const rootCmdExample = `  # Evaluate a fleet scenario
  fleetcarbon run fleet.yaml

  # Evaluate at a fixed reference date, as a table
  fleetcarbon run fleet.yaml --now 2024-07-01 --output table

  # Reject negative quantities and factors
  fleetcarbon run fleet.yaml --strict

  # Compare a theoretical and a real value
  fleetcarbon delta --theoretical 280 --real 345.5

  # Check progress toward an annual target
  fleetcarbon target --value 10000 --current 4000 --start 2024-01-01 --end 2025-01-01

  # List GWP presets
  fleetcarbon gwp`
