package carbon

// CalculateDelta measures how far a real value deviates from a theoretical one.
//
//	Absolute   = Round2(real - theoretical)
//	Percentage = Round2((real - theoretical) / theoretical × 100), or 0 when theoretical is 0
//
// The same rule serves vehicle, fleet and period comparisons.
func CalculateDelta(theoretical, realValue float64) Delta {
	delta := Delta{Absolute: Round2(realValue - theoretical)}
	if theoretical == 0 {
		return delta
	}
	delta.Percentage = Round2(((realValue - theoretical) / theoretical) * PercentageMultiplier)
	return delta
}
