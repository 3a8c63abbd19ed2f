package carbon

// CalculateGasCO2e converts a quantity of fuel or energy into the CO2e
// contribution of a single gas:
//
//	CO2e (kg) = Round2(quantity × factor (kg gas / unit) × GWP)
//
// Inputs are not validated; negative or zero quantities propagate.
func CalculateGasCO2e(quantity, factorKgPerUnit, gwp float64) float64 {
	return Round2(quantity * factorKgPerUnit * gwp)
}

// CalculateScopedEmissions computes the CO2e of one energy scope across all
// seven Kyoto gases.
//
// Each gas is rounded individually and the total is rounded again after
// summing the rounded values, so the displayed breakdown always adds up to
// the displayed total.
func CalculateScopedEmissions(input ScopedEmissionInput) ScopedEmissionResult {
	result := ScopedEmissionResult{Scope: input.Scope}

	var total float64
	for _, gas := range AllGases() {
		co2e := CalculateGasCO2e(input.Quantity, input.Factors[gas], input.GWP[gas])
		result.PerGas[gas] = co2e
		total += co2e
	}

	result.Total = Round2(total)
	return result
}
