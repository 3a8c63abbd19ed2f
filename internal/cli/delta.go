package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/fleetcarbon/internal/carbon"
	"github.com/rshade/fleetcarbon/internal/report"
)

type deltaParams struct {
	theoretical float64
	real        float64
}

// deltaOutput is the serialized result of the delta command.
type deltaOutput struct {
	TheoreticalKg float64          `json:"theoreticalKg" yaml:"theoreticalKg"`
	RealKg        float64          `json:"realKg" yaml:"realKg"`
	Delta         report.DeltaView `json:"delta" yaml:"delta"`
}

// newDeltaCmd creates the delta command, which compares a theoretical and a
// real emission value.
func newDeltaCmd(opts *rootOptions) *cobra.Command {
	var params deltaParams

	cmd := &cobra.Command{
		Use:   "delta",
		Short: "Compare a theoretical and a real emission value",
		Long: `Compute the absolute and percentage deviation of a real emission value
from a theoretical one. The percentage is 0 when the theoretical value is 0.`,
		Example: `  fleetcarbon delta --theoretical 280 --real 345.5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := deltaOutput{
				TheoreticalKg: params.theoretical,
				RealKg:        params.real,
				Delta:         report.NewDeltaView(carbon.CalculateDelta(params.theoretical, params.real)),
			}
			return renderDelta(cmd.OutOrStdout(), out, opts.outputFormat(cmd))
		},
	}

	cmd.Flags().Float64Var(&params.theoretical, "theoretical", 0, "theoretical emissions in kg (required)")
	cmd.Flags().Float64Var(&params.real, "real", 0, "real emissions in kg (required)")
	_ = cmd.MarkFlagRequired("theoretical")
	_ = cmd.MarkFlagRequired("real")

	return cmd
}

func renderDelta(w io.Writer, out deltaOutput, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case report.FormatJSON:
		return report.RenderJSON(w, out)
	case report.FormatYAML:
		return report.RenderYAML(w, out)
	case report.FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "THEORETICAL (kg)\tREAL (kg)\tDELTA (kg)\tDELTA %%\n")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			report.FormatKg(out.TheoreticalKg),
			report.FormatKg(out.RealKg),
			report.FormatKg(out.Delta.AbsoluteKg),
			report.FormatPercent(out.Delta.Percentage),
		)
		return tw.Flush()
	default:
		return fmt.Errorf("%w: %q", report.ErrUnknownFormat, format)
	}
}
