// Package scenario loads fleet scenario documents and evaluates them with the
// emission engine and the target tracker.
//
// A scenario names a GWP preset, the emission factor sets of each fuel, the
// vehicles of a fleet with their distance and consumption, and the
// reduction targets the fleet is measured against.
package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/rshade/fleetcarbon/internal/carbon"
)

// Document is a decoded scenario file.
type Document struct {
	// GWP names an assessment-report preset (AR4, AR5, AR6).
	GWP string `json:"gwp,omitempty" yaml:"gwp,omitempty" validate:"omitempty,gwppreset"`

	// GWPValues overrides individual gases of the selected preset, keyed by
	// gas symbol.
	GWPValues map[string]float64 `json:"gwpValues,omitempty" yaml:"gwpValues,omitempty" validate:"omitempty,uniquegas,dive,keys,kyotogas,endkeys" strict:"omitempty,dive,gte=0"`

	FactorSets []FactorSetSpec `json:"factorSets" yaml:"factorSets" validate:"dive" strict:"dive"`
	Vehicles   []VehicleSpec   `json:"vehicles" yaml:"vehicles" validate:"unique=ID,dive" strict:"dive"`
	Targets    []TargetSpec    `json:"targets,omitempty" yaml:"targets,omitempty" validate:"unique=Name,dive" strict:"dive"`
}

// FactorSetSpec declares the factors of a fuel from a date on.
type FactorSetSpec struct {
	Fuel          string             `json:"fuel" yaml:"fuel" validate:"required"`
	EffectiveFrom Date               `json:"effectiveFrom,omitempty" yaml:"effectiveFrom,omitempty"`
	Scope         string             `json:"scope,omitempty" yaml:"scope,omitempty" validate:"omitempty,scope"`
	Factors       map[string]float64 `json:"factors" yaml:"factors" validate:"required,uniquegas,dive,keys,kyotogas,endkeys" strict:"dive,gte=0"`
}

// VehicleSpec describes one vehicle over the reporting period.
type VehicleSpec struct {
	ID            string  `json:"id" yaml:"id" validate:"required"`
	CO2GramsPerKm float64 `json:"co2GramsPerKm" yaml:"co2GramsPerKm" strict:"gte=0"`
	KmTravelled   float64 `json:"kmTravelled" yaml:"kmTravelled" strict:"gte=0"`

	// PeriodEnd selects the factor sets in force; the run time when empty.
	PeriodEnd Date `json:"periodEnd,omitempty" yaml:"periodEnd,omitempty"`

	Consumption []ConsumptionSpec `json:"consumption" yaml:"consumption" validate:"dive" strict:"dive"`
}

// ConsumptionSpec is the quantity of one fuel consumed by a vehicle, in
// litres or kWh.
type ConsumptionSpec struct {
	Fuel     string  `json:"fuel" yaml:"fuel" validate:"required"`
	Quantity float64 `json:"quantity" yaml:"quantity" strict:"gte=0"`
}

// TargetSpec declares an emission budget over a window.
type TargetSpec struct {
	Name   string  `json:"name" yaml:"name" validate:"required"`
	Value  float64 `json:"value" yaml:"value" strict:"gte=0"`
	Period string  `json:"period" yaml:"period" validate:"required,period"`
	Start  Date    `json:"start" yaml:"start"`
	End    Date    `json:"end" yaml:"end"`

	// Current overrides the fleet real total as the emissions to date.
	Current *float64 `json:"current,omitempty" yaml:"current,omitempty" strict:"omitempty,gte=0"`
}

// Date is a calendar date or timestamp in a scenario document. It accepts
// "2006-01-02" and RFC 3339 values.
type Date struct {
	Time time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parses "2006-01-02" (as UTC midnight) or an RFC 3339 timestamp.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return Date{Time: t}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler. Midnight UTC values are
// written as plain dates.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	t := d.Time
	if t.Location() == time.UTC && t.Equal(t.Truncate(24*time.Hour)) {
		return []byte(t.Format(time.DateOnly)), nil
	}
	return []byte(t.Format(time.RFC3339)), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// ResolveGWP returns the GWP values of the document: the named preset (or
// fallback when the document names none) with GWPValues applied on top.
func (d *Document) ResolveGWP(fallback string) (carbon.PerGas, string, error) {
	name := d.GWP
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = DefaultGWPPreset
	}

	gwp, ok := GWPPreset(name)
	if !ok {
		return carbon.PerGas{}, "", fmt.Errorf("%w: %q", ErrUnknownGWPPreset, name)
	}

	if err := gwp.Overlay(d.GWPValues); err != nil {
		return carbon.PerGas{}, "", err
	}

	name = strings.ToUpper(strings.TrimSpace(name))
	if len(d.GWPValues) > 0 {
		name += "+custom"
	}
	return gwp, name, nil
}

// Registry builds a FactorRegistry from the document's factor sets.
// Sets without a scope default to Scope1.
func (d *Document) Registry() (*FactorRegistry, error) {
	registry := NewFactorRegistry()
	for _, spec := range d.FactorSets {
		factors, err := carbon.PerGasFromMap(spec.Factors)
		if err != nil {
			return nil, fmt.Errorf("factor set %q: %w", spec.Fuel, err)
		}

		scope, err := carbon.ParseScope(spec.Scope)
		if err != nil {
			return nil, fmt.Errorf("factor set %q: %w", spec.Fuel, err)
		}
		if scope == carbon.ScopeUnspecified {
			scope = carbon.Scope1
		}

		registry.Add(FactorSet{
			Fuel:          spec.Fuel,
			EffectiveFrom: spec.EffectiveFrom.Time,
			Scope:         scope,
			Factors:       factors,
		})
	}
	return registry, nil
}
