package carbon

// AggregateFleet sums vehicle results into a fleet total.
//
// Theoretical, real and per-gas values are rounded after each addition, the
// same rule CalculateVehicleEmissions applies across scopes. The fleet delta
// is computed from the aggregated totals, not averaged from vehicle deltas.
func AggregateFleet(results []VehicleEmissionResult) FleetEmissionResult {
	fleet := FleetEmissionResult{VehicleCount: len(results)}

	for _, r := range results {
		fleet.Theoretical = Round2(fleet.Theoretical + r.Theoretical)
		fleet.Real = Round2(fleet.Real + r.Real)
		fleet.PerGas = mergePerGas(fleet.PerGas, r.PerGas)
	}

	fleet.Delta = CalculateDelta(fleet.Theoretical, fleet.Real)
	return fleet
}
