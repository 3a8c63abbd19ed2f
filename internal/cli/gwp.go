package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/fleetcarbon/internal/carbon"
	"github.com/rshade/fleetcarbon/internal/report"
	"github.com/rshade/fleetcarbon/internal/scenario"
)

// gwpPresetOutput is one preset in the gwp command output.
type gwpPresetOutput struct {
	Name   string             `json:"name" yaml:"name"`
	Values map[string]float64 `json:"values" yaml:"values"`
}

// newGWPCmd creates the gwp command, which lists the GWP presets.
func newGWPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gwp",
		Short: "List the Global Warming Potential presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := scenario.GWPPresetNames()
			presets := make([]gwpPresetOutput, 0, len(names))
			for _, name := range names {
				values, _ := scenario.GWPPreset(name)
				presets = append(presets, gwpPresetOutput{Name: name, Values: values.Map()})
			}
			return renderGWP(cmd.OutOrStdout(), presets, opts.outputFormat(cmd))
		},
	}
}

func renderGWP(w io.Writer, presets []gwpPresetOutput, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case report.FormatJSON:
		return report.RenderJSON(w, presets)
	case report.FormatYAML:
		return report.RenderYAML(w, presets)
	case report.FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		header := []string{"PRESET"}
		for _, gas := range carbon.AllGases() {
			header = append(header, gas.String())
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for _, p := range presets {
			row := []string{p.Name}
			for _, gas := range carbon.AllGases() {
				row = append(row, fmt.Sprint(p.Values[gas.String()]))
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("%w: %q", report.ErrUnknownFormat, format)
	}
}
