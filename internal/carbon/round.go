package carbon

import "math"

// Round2 rounds x to 2 decimal places, half away from zero.
//
// Rounding is arithmetic (never through string formatting) so the same input
// yields the same output on every platform and locale. Round2 is idempotent on
// values that are already rounded.
func Round2(x float64) float64 {
	return math.Round(x*roundingScale) / roundingScale
}
