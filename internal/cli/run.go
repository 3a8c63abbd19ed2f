package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/fleetcarbon/internal/carbon"
	"github.com/rshade/fleetcarbon/internal/report"
	"github.com/rshade/fleetcarbon/internal/scenario"
)

type runParams struct {
	now    string
	strict bool
}

// newRunCmd creates the run command, which evaluates a scenario file.
func newRunCmd(opts *rootOptions) *cobra.Command {
	var params runParams

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate a fleet scenario",
		Long: `Evaluate a fleet scenario document (YAML or JSON).

Each vehicle's theoretical emissions are compared with its real emissions
computed from fuel and electricity consumption, the fleet total is
aggregated, and every target is checked against the fleet total or its
explicit current value.`,
		Example: `  fleetcarbon run fleet.yaml
  fleetcarbon run fleet.json --now 2024-07-01 --output table --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, opts, params, args[0])
		},
	}

	cmd.Flags().StringVar(&params.now, "now", "",
		"reference date (YYYY-MM-DD or RFC 3339); defaults to the current time")
	cmd.Flags().BoolVar(&params.strict, "strict", false,
		"reject negative distances, quantities, factors and GWP values (overrides FLEETCARBON_STRICT_INPUTS)")

	return cmd
}

func executeRun(cmd *cobra.Command, opts *rootOptions, params runParams, path string) error {
	ctx := cmd.Context()
	log := zerolog.Ctx(ctx)

	now, err := parseNow(params.now)
	if err != nil {
		return err
	}

	strict := opts.cfg.StrictInputs
	if cmd.Flags().Changed("strict") {
		strict = params.strict
	}

	log.Debug().Str("path", path).Bool("strict", strict).Time("now", now).Msg("loading scenario")

	doc, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}
	if err := scenario.Validate(doc, strict); err != nil {
		return err
	}

	result, err := scenario.NewRunner(carbon.NewEstimator(), opts.cfg.DefaultGWP).Run(ctx, doc, now)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", path, err)
	}

	return report.Render(cmd.OutOrStdout(), result, opts.outputFormat(cmd))
}

// parseNow parses a --now flag value, defaulting to the current UTC time.
func parseNow(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	return parseDateFlag("now", value)
}

func parseDateFlag(name, value string) (time.Time, error) {
	d, err := scenario.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return d.Time, nil
}
