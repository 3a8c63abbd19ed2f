package report

import (
	"time"

	"github.com/rshade/fleetcarbon/internal/carbon"
	"github.com/rshade/fleetcarbon/internal/scenario"
	"github.com/rshade/fleetcarbon/internal/target"
)

// View is the serialized form of a scenario report. Per-gas values are keyed
// by gas symbol and always list all seven gases.
type View struct {
	RunID         string        `json:"runId" yaml:"runId"`
	GeneratedAt   time.Time     `json:"generatedAt" yaml:"generatedAt"`
	GWP           string        `json:"gwp" yaml:"gwp"`
	Vehicles      []VehicleView `json:"vehicles" yaml:"vehicles"`
	Fleet         FleetView     `json:"fleet" yaml:"fleet"`
	Targets       []TargetView  `json:"targets" yaml:"targets"`
	OverallStatus string        `json:"overallStatus" yaml:"overallStatus"`
}

// VehicleView is one vehicle of a View.
type VehicleView struct {
	ID            string             `json:"id" yaml:"id"`
	Detail        string             `json:"detail" yaml:"detail"`
	TheoreticalKg float64            `json:"theoreticalKg" yaml:"theoreticalKg"`
	RealKg        float64            `json:"realKg" yaml:"realKg"`
	Scopes        []ScopeView        `json:"scopes" yaml:"scopes"`
	PerGasKg      map[string]float64 `json:"perGasKg" yaml:"perGasKg"`
	Delta         DeltaView          `json:"delta" yaml:"delta"`
}

// ScopeView is one consumption line of a vehicle.
type ScopeView struct {
	Fuel     string  `json:"fuel" yaml:"fuel"`
	Scope    string  `json:"scope" yaml:"scope"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	TotalKg  float64 `json:"totalKg" yaml:"totalKg"`
}

// DeltaView is the deviation of real from theoretical emissions.
type DeltaView struct {
	AbsoluteKg float64 `json:"absoluteKg" yaml:"absoluteKg"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// FleetView is the fleet total.
type FleetView struct {
	VehicleCount  int                `json:"vehicleCount" yaml:"vehicleCount"`
	TheoreticalKg float64            `json:"theoreticalKg" yaml:"theoreticalKg"`
	RealKg        float64            `json:"realKg" yaml:"realKg"`
	PerGasKg      map[string]float64 `json:"perGasKg" yaml:"perGasKg"`
	Delta         DeltaView          `json:"delta" yaml:"delta"`
}

// TargetView is the progress of one target.
type TargetView struct {
	Name        string          `json:"name" yaml:"name"`
	Period      string          `json:"period" yaml:"period"`
	Start       string          `json:"start" yaml:"start"`
	End         string          `json:"end" yaml:"end"`
	TargetKg    float64         `json:"targetKg" yaml:"targetKg"`
	CurrentKg   float64         `json:"currentKg" yaml:"currentKg"`
	Percentage  float64         `json:"percentage" yaml:"percentage"`
	RemainingKg float64         `json:"remainingKg" yaml:"remainingKg"`
	ProjectedKg float64         `json:"projectedKg" yaml:"projectedKg"`
	Status      string          `json:"status" yaml:"status"`
	Milestones  []MilestoneView `json:"milestones" yaml:"milestones"`
}

// MilestoneView is one quarterly checkpoint.
type MilestoneView struct {
	Label      string  `json:"label" yaml:"label"`
	Date       string  `json:"date" yaml:"date"`
	ExpectedKg float64 `json:"expectedKg" yaml:"expectedKg"`
	Achieved   bool    `json:"achieved" yaml:"achieved"`
	OnTrack    bool    `json:"onTrack" yaml:"onTrack"`
}

// NewView converts a scenario report to its serialized form.
func NewView(r *scenario.Report) View {
	view := View{
		RunID:         r.RunID,
		GeneratedAt:   r.GeneratedAt,
		GWP:           r.GWP,
		Vehicles:      make([]VehicleView, 0, len(r.Vehicles)),
		Fleet:         newFleetView(r.Fleet),
		Targets:       make([]TargetView, 0, len(r.Targets)),
		OverallStatus: r.OverallStatus.String(),
	}
	for _, v := range r.Vehicles {
		view.Vehicles = append(view.Vehicles, newVehicleView(v))
	}
	for _, t := range r.Targets {
		view.Targets = append(view.Targets, NewTargetView(t))
	}
	return view
}

func newVehicleView(v scenario.VehicleReport) VehicleView {
	scopes := make([]ScopeView, 0, len(v.Scopes))
	for _, line := range v.Scopes {
		scopes = append(scopes, ScopeView{
			Fuel:     line.Fuel,
			Scope:    line.Scope.String(),
			Quantity: line.Quantity,
			TotalKg:  line.Total,
		})
	}
	return VehicleView{
		ID:            v.ID,
		Detail:        v.Detail,
		TheoreticalKg: v.Result.Theoretical,
		RealKg:        v.Result.Real,
		Scopes:        scopes,
		PerGasKg:      v.Result.PerGas.Map(),
		Delta:         NewDeltaView(v.Result.Delta),
	}
}

func newFleetView(f carbon.FleetEmissionResult) FleetView {
	return FleetView{
		VehicleCount:  f.VehicleCount,
		TheoreticalKg: f.Theoretical,
		RealKg:        f.Real,
		PerGasKg:      f.PerGas.Map(),
		Delta:         NewDeltaView(f.Delta),
	}
}

// NewDeltaView converts a delta to its serialized form.
func NewDeltaView(d carbon.Delta) DeltaView {
	return DeltaView{AbsoluteKg: d.Absolute, Percentage: d.Percentage}
}

// NewTargetView converts a target report to its serialized form.
func NewTargetView(t scenario.TargetReport) TargetView {
	return TargetView{
		Name:        t.Name,
		Period:      t.Period.String(),
		Start:       formatDate(t.Start),
		End:         formatDate(t.End),
		TargetKg:    t.Progress.TargetValue,
		CurrentKg:   t.Progress.CurrentValue,
		Percentage:  t.Progress.Percentage,
		RemainingKg: t.Progress.Remaining,
		ProjectedKg: t.Progress.Projection,
		Status:      t.Progress.Status.String(),
		Milestones:  newMilestoneViews(t.Progress.Milestones),
	}
}

func newMilestoneViews(milestones []target.Milestone) []MilestoneView {
	views := make([]MilestoneView, 0, len(milestones))
	for _, m := range milestones {
		views = append(views, MilestoneView{
			Label:      m.Label,
			Date:       formatDate(m.Date),
			ExpectedKg: m.ExpectedValue,
			Achieved:   m.Achieved,
			OnTrack:    m.OnTrack,
		})
	}
	return views
}
