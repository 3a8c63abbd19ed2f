package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/fleetcarbon/internal/carbon"
	"github.com/rshade/fleetcarbon/internal/logging"
	"github.com/rshade/fleetcarbon/internal/target"
)

// Report is the evaluation of one scenario.
type Report struct {
	RunID       string
	GeneratedAt time.Time

	// GWP names the GWP values used, e.g. "AR5" or "AR6+custom".
	GWP string

	Vehicles      []VehicleReport
	Fleet         carbon.FleetEmissionResult
	Targets       []TargetReport
	OverallStatus target.Status
}

// VehicleReport is the result of one vehicle.
type VehicleReport struct {
	ID     string
	Detail string
	Scopes []ScopeLine
	Result carbon.VehicleEmissionResult
}

// ScopeLine is one consumption line of a vehicle after factor resolution.
type ScopeLine struct {
	Fuel     string
	Scope    carbon.Scope
	Quantity float64
	Total    float64
}

// TargetReport is the progress of one target.
type TargetReport struct {
	Name     string
	Period   target.Period
	Start    time.Time
	End      time.Time
	Progress target.Progress
}

// Runner evaluates scenario documents.
type Runner struct {
	estimator  carbon.VehicleEstimator
	defaultGWP string
}

// NewRunner creates a runner. A nil estimator uses carbon.NewEstimator;
// defaultGWP names the preset applied when a document names none.
func NewRunner(estimator carbon.VehicleEstimator, defaultGWP string) *Runner {
	if estimator == nil {
		estimator = carbon.NewEstimator()
	}
	return &Runner{estimator: estimator, defaultGWP: defaultGWP}
}

// Run evaluates doc at the reference time now.
//
// Each consumption line is matched to the factor set of its fuel in force at
// the vehicle's period end (now when unset). Targets without an explicit
// current value are measured against the fleet real total. Run does not
// validate doc; call Validate first.
func (r *Runner) Run(ctx context.Context, doc *Document, now time.Time) (*Report, error) {
	logger := logging.Component(*zerolog.Ctx(ctx), "runner")

	gwp, gwpName, err := doc.ResolveGWP(r.defaultGWP)
	if err != nil {
		return nil, err
	}

	registry, err := doc.Registry()
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: now,
		GWP:         gwpName,
		Vehicles:    make([]VehicleReport, 0, len(doc.Vehicles)),
		Targets:     make([]TargetReport, 0, len(doc.Targets)),
	}
	logger = logger.With().Str("run_id", report.RunID).Logger()
	logger.Debug().
		Str("gwp", gwpName).
		Strs("fuels", registry.Fuels()).
		Int("vehicles", len(doc.Vehicles)).
		Int("targets", len(doc.Targets)).
		Msg("starting scenario run")

	results := make([]carbon.VehicleEmissionResult, 0, len(doc.Vehicles))
	for _, spec := range doc.Vehicles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vehicle, err := r.evaluateVehicle(spec, registry, gwp, now)
		if err != nil {
			return nil, fmt.Errorf("vehicle %q: %w", spec.ID, err)
		}

		logger.Debug().
			Str("vehicle_id", spec.ID).
			Float64("theoretical_kg", vehicle.Result.Theoretical).
			Float64("real_kg", vehicle.Result.Real).
			Float64("delta_pct", vehicle.Result.Delta.Percentage).
			Msg("vehicle estimated")

		report.Vehicles = append(report.Vehicles, vehicle)
		results = append(results, vehicle.Result)
	}

	report.Fleet = carbon.AggregateFleet(results)

	statuses := make([]target.Status, 0, len(doc.Targets))
	for _, spec := range doc.Targets {
		tr, err := evaluateTarget(spec, report.Fleet.Real, now)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", spec.Name, err)
		}

		logger.Debug().
			Str("target", spec.Name).
			Str("status", tr.Progress.Status.String()).
			Float64("percentage", tr.Progress.Percentage).
			Msg("target evaluated")

		report.Targets = append(report.Targets, tr)
		statuses = append(statuses, tr.Progress.Status)
	}
	report.OverallStatus = target.AggregateStatus(statuses)

	logger.Info().
		Int("vehicles", report.Fleet.VehicleCount).
		Float64("fleet_real_kg", report.Fleet.Real).
		Str("overall_status", report.OverallStatus.String()).
		Msg("scenario run complete")

	return report, nil
}

func (r *Runner) evaluateVehicle(
	spec VehicleSpec,
	registry *FactorRegistry,
	gwp carbon.PerGas,
	now time.Time,
) (VehicleReport, error) {
	at := now
	if !spec.PeriodEnd.IsZero() {
		at = spec.PeriodEnd.Time
	}

	input := carbon.VehicleEmissionInput{
		CO2GramsPerKm: spec.CO2GramsPerKm,
		KmTravelled:   spec.KmTravelled,
		Scopes:        make([]carbon.ScopedEmissionInput, 0, len(spec.Consumption)),
	}
	lines := make([]ScopeLine, 0, len(spec.Consumption))

	for _, line := range spec.Consumption {
		set, err := registry.Resolve(line.Fuel, at)
		if err != nil {
			return VehicleReport{}, err
		}
		input.Scopes = append(input.Scopes, carbon.ScopedEmissionInput{
			Scope:    set.Scope,
			Quantity: line.Quantity,
			Factors:  set.Factors,
			GWP:      gwp,
		})
		lines = append(lines, ScopeLine{
			Fuel:     line.Fuel,
			Scope:    set.Scope,
			Quantity: line.Quantity,
		})
	}

	result := r.estimator.EstimateVehicle(input)
	for i := range lines {
		if i < len(result.RealByScope) {
			lines[i].Total = result.RealByScope[i]
		}
	}

	return VehicleReport{
		ID:     spec.ID,
		Detail: r.estimator.Detail(input),
		Scopes: lines,
		Result: result,
	}, nil
}

func evaluateTarget(spec TargetSpec, fleetReal float64, now time.Time) (TargetReport, error) {
	period, err := target.ParsePeriod(spec.Period)
	if err != nil {
		return TargetReport{}, err
	}

	current := fleetReal
	if spec.Current != nil {
		current = *spec.Current
	}

	return TargetReport{
		Name:   spec.Name,
		Period: period,
		Start:  spec.Start.Time,
		End:    spec.End.Time,
		Progress: target.CalculateProgress(
			spec.Value, current, spec.Start.Time, spec.End.Time, now, period,
		),
	}, nil
}
