package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleetcarbon/internal/carbon"
)

// TestGWPPresets_WithinValidRange checks every preset has CO2 = 1 and no
// gas outside the range of published GWP100 values.
func TestGWPPresets_WithinValidRange(t *testing.T) {
	const maxValidGWP = 30000.0

	for _, name := range GWPPresetNames() {
		t.Run(name, func(t *testing.T) {
			values, ok := GWPPreset(name)
			require.True(t, ok)
			assert.InDelta(t, 1.0, values[carbon.GasCO2], floatTolerance)
			for _, gas := range carbon.AllGases() {
				assert.Positive(t, values[gas], "%s GWP for %s", name, gas)
				assert.LessOrEqual(t, values[gas], maxValidGWP, "%s GWP for %s", name, gas)
			}
		})
	}
}

func TestGWPPreset(t *testing.T) {
	ar5, ok := GWPPreset("ar5")
	require.True(t, ok)
	assert.InDelta(t, 28.0, ar5[carbon.GasCH4], floatTolerance)
	assert.InDelta(t, 265.0, ar5[carbon.GasN2O], floatTolerance)

	ar6, ok := GWPPreset(" AR6 ")
	require.True(t, ok)
	assert.InDelta(t, 27.9, ar6[carbon.GasCH4], floatTolerance)

	_, ok = GWPPreset("SAR")
	assert.False(t, ok)
}

func TestGWPPreset_ReturnsCopy(t *testing.T) {
	values, ok := GWPPreset("AR4")
	require.True(t, ok)
	values[carbon.GasCH4] = 0

	again, _ := GWPPreset("AR4")
	assert.InDelta(t, 25.0, again[carbon.GasCH4], floatTolerance)
}

func TestGWPPresetNames(t *testing.T) {
	assert.Equal(t, []string{"AR4", "AR5", "AR6"}, GWPPresetNames())
}
