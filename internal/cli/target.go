package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/fleetcarbon/internal/report"
	"github.com/rshade/fleetcarbon/internal/scenario"
	"github.com/rshade/fleetcarbon/internal/target"
)

type targetParams struct {
	name    string
	value   float64
	current float64
	start   string
	end     string
	now     string
	period  string
}

// newTargetCmd creates the target command, which evaluates one emission
// target from flag values.
func newTargetCmd(opts *rootOptions) *cobra.Command {
	var params targetParams

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Check progress toward an emission target",
		Long: `Evaluate one emission target. Emissions accrued so far are extrapolated
linearly to the end of the window; a projection within 15% above the target
is at-risk, beyond that off-track. Annual targets list quarterly milestones.`,
		Example: `  fleetcarbon target --value 10000 --current 4000 --start 2024-01-01 --end 2025-01-01 --now 2024-07-02
  fleetcarbon target --value 800 --current 300 --start 2024-03-01 --end 2024-04-01 --period Monthly`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeTarget(cmd, opts, params)
		},
	}

	cmd.Flags().StringVar(&params.name, "name", "target", "target name shown in the output")
	cmd.Flags().Float64Var(&params.value, "value", 0, "target emissions in kg (required)")
	cmd.Flags().Float64Var(&params.current, "current", 0, "emissions to date in kg (required)")
	cmd.Flags().StringVar(&params.start, "start", "", "window start, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&params.end, "end", "", "window end, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&params.now, "now", "", "reference date; defaults to the current time")
	cmd.Flags().StringVar(&params.period, "period", target.PeriodAnnual.String(), "Annual or Monthly")
	for _, name := range []string{"value", "current", "start", "end"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func executeTarget(cmd *cobra.Command, opts *rootOptions, params targetParams) error {
	start, err := parseDateFlag("start", params.start)
	if err != nil {
		return err
	}
	end, err := parseDateFlag("end", params.end)
	if err != nil {
		return err
	}
	now, err := parseNow(params.now)
	if err != nil {
		return err
	}
	period, err := target.ParsePeriod(params.period)
	if err != nil {
		return fmt.Errorf("--period: %w", err)
	}

	tr := scenario.TargetReport{
		Name:     params.name,
		Period:   period,
		Start:    start,
		End:      end,
		Progress: target.CalculateProgress(params.value, params.current, start, end, now, period),
	}

	return renderTarget(cmd.OutOrStdout(), tr, opts.outputFormat(cmd))
}

func renderTarget(w io.Writer, tr scenario.TargetReport, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case report.FormatJSON:
		return report.RenderJSON(w, report.NewTargetView(tr))
	case report.FormatYAML:
		return report.RenderYAML(w, report.NewTargetView(tr))
	case report.FormatTable:
		return report.RenderTargets(w, []scenario.TargetReport{tr})
	default:
		return fmt.Errorf("%w: %q", report.ErrUnknownFormat, format)
	}
}
