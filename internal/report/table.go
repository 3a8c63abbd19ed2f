package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/fleetcarbon/internal/scenario"
	"github.com/rshade/fleetcarbon/internal/target"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// RenderTable writes r as aligned text tables: vehicles with a fleet total
// row, then targets with the milestones of annual targets.
func RenderTable(w io.Writer, r *scenario.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Run %s (%s, GWP %s)\n\n",
		r.RunID, r.GeneratedAt.Format("2006-01-02 15:04 MST"), r.GWP); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := renderVehicles(tw, r); err != nil {
		return err
	}
	if len(r.Targets) > 0 {
		if err := renderTargets(tw, r.Targets); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(tw, "\nOverall status: %s\n", r.OverallStatus); err != nil {
		return fmt.Errorf("writing status: %w", err)
	}
	return tw.Flush()
}

// RenderTargets writes only the targets table.
func RenderTargets(w io.Writer, targets []scenario.TargetReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if err := renderTargets(tw, targets); err != nil {
		return err
	}
	return tw.Flush()
}

func renderVehicles(tw *tabwriter.Writer, r *scenario.Report) error {
	if _, err := fmt.Fprintf(tw, "VEHICLE\tTHEORETICAL (kg)\tREAL (kg)\tDELTA (kg)\tDELTA %%\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t----------------\t---------\t----------\t-------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, v := range r.Vehicles {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			v.ID,
			FormatKg(v.Result.Theoretical),
			FormatKg(v.Result.Real),
			FormatKg(v.Result.Delta.Absolute),
			FormatPercent(v.Result.Delta.Percentage),
		); err != nil {
			return fmt.Errorf("writing vehicle %s: %w", v.ID, err)
		}
	}

	fleet := r.Fleet
	if _, err := fmt.Fprintf(tw, "FLEET (%d)\t%s\t%s\t%s\t%s\n",
		fleet.VehicleCount,
		FormatKg(fleet.Theoretical),
		FormatKg(fleet.Real),
		FormatKg(fleet.Delta.Absolute),
		FormatPercent(fleet.Delta.Percentage),
	); err != nil {
		return fmt.Errorf("writing fleet total: %w", err)
	}
	return nil
}

func renderTargets(tw *tabwriter.Writer, targets []scenario.TargetReport) error {
	if _, err := fmt.Fprintf(tw, "\nTARGET\tPERIOD\tCURRENT (kg)\tTARGET (kg)\tUSED\tPROJECTED (kg)\tSTATUS\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t------------\t-----------\t----\t--------------\t------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, t := range targets {
		p := t.Progress
		projected := "-"
		if p.Status != target.StatusCompleted {
			projected = FormatKg(p.Projection)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%%\t%s\t%s\n",
			t.Name,
			t.Period,
			FormatKg(p.CurrentValue),
			FormatKg(p.TargetValue),
			formatFixed(p.Percentage, 2),
			projected,
			p.Status,
		); err != nil {
			return fmt.Errorf("writing target %s: %w", t.Name, err)
		}

		for _, m := range p.Milestones {
			if _, err := fmt.Fprintf(tw, "  %s %s\t\t\t%s\t\t\t%s\n",
				m.Label, formatDate(m.Date), FormatKg(m.ExpectedValue), milestoneState(m),
			); err != nil {
				return fmt.Errorf("writing milestone %s: %w", m.Label, err)
			}
		}
	}
	return nil
}

func milestoneState(m target.Milestone) string {
	switch {
	case !m.Achieved:
		return "pending"
	case m.OnTrack:
		return "met"
	default:
		return "missed"
	}
}
