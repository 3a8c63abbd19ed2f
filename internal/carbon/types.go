package carbon

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// PerGas holds one value per Kyoto gas, indexed by Gas.
//
// It is used for emission factors (kg of gas per unit of fuel or energy),
// GWP multipliers (dimensionless) and per-gas results (kg CO2e). Because it is
// a fixed-size array every gas is always present; unused gases are zero.
type PerGas [NumGases]float64

// Sum returns the plain sum of all seven values.
func (p PerGas) Sum() float64 {
	var total float64
	for _, gas := range AllGases() {
		total += p[gas]
	}
	return total
}

// Map returns the values keyed by gas symbol. All seven gases are present.
func (p PerGas) Map() map[string]float64 {
	out := make(map[string]float64, NumGases)
	for _, gas := range AllGases() {
		out[gas.String()] = p[gas]
	}
	return out
}

// PerGasFromMap builds a PerGas from values keyed by gas symbol.
// Missing gases are zero. Unknown symbols return ErrUnknownGas and two
// symbols naming the same gas ("CO2" and "co2") return ErrDuplicateGas.
func PerGasFromMap(m map[string]float64) (PerGas, error) {
	var p PerGas
	if err := p.Overlay(m); err != nil {
		return PerGas{}, err
	}
	return p, nil
}

// Overlay sets the gases named in m, leaving the others unchanged. It
// rejects symbols the way PerGasFromMap does; on error p may be partially
// updated.
func (p *PerGas) Overlay(m map[string]float64) error {
	var seen [NumGases]string
	for _, symbol := range slices.Sorted(maps.Keys(m)) {
		gas, err := ParseGas(symbol)
		if err != nil {
			return err
		}
		if prev := seen[gas]; prev != "" {
			return fmt.Errorf("%w: %q and %q both name %s", ErrDuplicateGas, prev, symbol, gas)
		}
		seen[gas] = symbol
		p[gas] = m[symbol]
	}
	return nil
}

// Scope classifies the origin of an emission under the GHG Protocol.
type Scope int

const (
	// ScopeUnspecified is the zero value; arithmetic treats it like any other scope.
	ScopeUnspecified Scope = iota
	// Scope1 covers direct combustion of fuel in the vehicle.
	Scope1
	// Scope2 covers purchased grid electricity used to charge the vehicle.
	Scope2
)

// String returns the scope label ("scope1", "scope2" or "unspecified").
func (s Scope) String() string {
	switch s {
	case Scope1:
		return "scope1"
	case Scope2:
		return "scope2"
	case ScopeUnspecified:
		return "unspecified"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// ParseScope parses "scope1"/"scope2" (also "1"/"2"), case-insensitively.
// An empty string parses to ScopeUnspecified.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ScopeUnspecified, nil
	case "scope1", "1":
		return Scope1, nil
	case "scope2", "2":
		return Scope2, nil
	default:
		return ScopeUnspecified, fmt.Errorf("%w: %q", ErrUnknownScope, s)
	}
}

// ScopedEmissionInput is the activity of one energy scope over a period.
type ScopedEmissionInput struct {
	// Scope is informational and does not affect the arithmetic.
	Scope Scope

	// Quantity is litres for combustion fuel or kWh for electricity.
	Quantity float64

	// Factors is kg of each gas emitted per unit of Quantity.
	Factors PerGas

	// GWP is the Global Warming Potential multiplier of each gas.
	GWP PerGas
}

// ScopedEmissionResult is the CO2e of one scope.
type ScopedEmissionResult struct {
	Scope Scope

	// Total is Round2 of the sum of the already-rounded PerGas values, in kg CO2e.
	Total float64

	// PerGas is the rounded CO2e contribution of each gas, in kg.
	PerGas PerGas
}

// VehicleEmissionInput describes one vehicle over a period.
type VehicleEmissionInput struct {
	// CO2GramsPerKm is the catalog (WLTP or equivalent) CO2 intensity.
	CO2GramsPerKm float64

	// KmTravelled is the distance driven over the period.
	KmTravelled float64

	// Scopes lists each energy scope consumed. One scope for pure-fuel
	// vehicles, two (thermal + electric) for plug-in hybrids.
	Scopes []ScopedEmissionInput
}

// VehicleEmissionResult compares theoretical and real emissions of one vehicle.
type VehicleEmissionResult struct {
	// Theoretical is the catalog-based estimate in kg CO2.
	Theoretical float64

	// Real is the consumption-based total across all scopes in kg CO2e.
	Real float64

	// PerGas merges the per-gas results of every scope.
	PerGas PerGas

	// RealByScope holds each scope total in input order.
	RealByScope []float64

	// Delta is the deviation of Real from Theoretical.
	Delta Delta
}

// Delta is the deviation of a real value from a theoretical one.
// Positive values mean real emissions exceed the theoretical estimate.
type Delta struct {
	// Absolute is real - theoretical in kg.
	Absolute float64

	// Percentage is relative to theoretical; 0 when theoretical is 0.
	Percentage float64
}

// FleetEmissionResult aggregates several vehicle results.
type FleetEmissionResult struct {
	VehicleCount int
	Theoretical  float64
	Real         float64
	PerGas       PerGas
	Delta        Delta
}
