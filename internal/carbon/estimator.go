package carbon

// VehicleEstimator provides emission estimation for vehicles.
type VehicleEstimator interface {
	// EstimateVehicle computes theoretical and real emissions of one vehicle.
	EstimateVehicle(input VehicleEmissionInput) VehicleEmissionResult

	// Detail describes the inputs of one estimate for reports.
	Detail(input VehicleEmissionInput) string
}

// Estimator implements VehicleEstimator. It holds no state and is safe for
// concurrent use.
type Estimator struct{}

// NewEstimator creates a new vehicle emission estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// EstimateVehicle delegates to CalculateVehicleEmissions.
func (e *Estimator) EstimateVehicle(input VehicleEmissionInput) VehicleEmissionResult {
	return CalculateVehicleEmissions(input)
}

// Detail returns a human-readable description of the estimation inputs.
func (e *Estimator) Detail(input VehicleEmissionInput) string {
	return DescribeVehicleInput(input)
}

// DescribeVehicleInput summarizes a vehicle input, e.g. "120 g/km, 10000 km, 2 scopes".
func DescribeVehicleInput(input VehicleEmissionInput) string {
	detail := formatFloat(input.CO2GramsPerKm) + " g/km, " +
		formatFloat(input.KmTravelled) + " km, " +
		formatInt(len(input.Scopes)) + " scope"
	if len(input.Scopes) != 1 {
		detail += "s"
	}
	return detail
}

// CalculateTheoreticalEmissions returns the catalog-based estimate in kg:
//
//	Round2(co2GramsPerKm × kmTravelled / 1000)
func CalculateTheoreticalEmissions(co2GramsPerKm, kmTravelled float64) float64 {
	return Round2((co2GramsPerKm * kmTravelled) / GramsPerKilogram)
}

// CalculateVehicleEmissions computes the theoretical and real emissions of a
// vehicle and the deviation between them.
//
// The calculation:
//  1. Theoretical = CalculateTheoreticalEmissions(intensity, distance)
//  2. For each scope, in order: CalculateScopedEmissions, append its total to
//     RealByScope, add it to the running real total and merge its per-gas
//     values (rounded after each addition)
//  3. Real = Round2(running real total)
//  4. Delta = CalculateDelta(Theoretical, Real)
//
// The scope count is not checked; hybrid vs. thermal is decided by the caller.
func CalculateVehicleEmissions(input VehicleEmissionInput) VehicleEmissionResult {
	result := VehicleEmissionResult{
		Theoretical: CalculateTheoreticalEmissions(input.CO2GramsPerKm, input.KmTravelled),
		RealByScope: make([]float64, 0, len(input.Scopes)),
	}

	var realTotal float64
	for _, scopeInput := range input.Scopes {
		scoped := CalculateScopedEmissions(scopeInput)
		result.RealByScope = append(result.RealByScope, scoped.Total)
		realTotal += scoped.Total
		result.PerGas = mergePerGas(result.PerGas, scoped.PerGas)
	}

	result.Real = Round2(realTotal)
	result.Delta = CalculateDelta(result.Theoretical, result.Real)
	return result
}

// mergePerGas adds b into a gas by gas, rounding each sum.
func mergePerGas(a, b PerGas) PerGas {
	for _, gas := range AllGases() {
		a[gas] = Round2(a[gas] + b[gas])
	}
	return a
}
