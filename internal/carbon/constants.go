// Package carbon converts vehicle activity (distance driven, fuel and energy
// consumed) into greenhouse-gas emissions expressed in CO2-equivalent.
package carbon

const (
	// GramsPerKilogram converts catalog CO2 intensity (g/km × km) to kilograms.
	GramsPerKilogram = 1000.0

	// PercentageMultiplier converts a ratio to a percentage.
	PercentageMultiplier = 100.0

	// roundingScale is the factor applied before rounding to 2 decimal places.
	roundingScale = 100.0
)
