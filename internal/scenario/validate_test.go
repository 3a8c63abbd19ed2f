package scenario

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleetcarbon/internal/carbon"
)

func loadFleet(t *testing.T) *Document {
	t.Helper()
	doc, err := LoadFile(filepath.Join("testdata", "fleet.yaml"))
	require.NoError(t, err)
	return doc
}

func TestValidate_ValidDocument(t *testing.T) {
	doc := loadFleet(t)
	assert.NoError(t, Validate(doc, false))
	assert.NoError(t, Validate(doc, true))
}

func TestValidate_Structural(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Document)
		want   string
	}{
		{
			name:   "missing vehicle id",
			mutate: func(d *Document) { d.Vehicles[0].ID = "" },
			want:   "Document.Vehicles[0].ID is required",
		},
		{
			name:   "duplicate vehicle id",
			mutate: func(d *Document) { d.Vehicles[1].ID = d.Vehicles[0].ID },
			want:   "Document.Vehicles must have unique ID values",
		},
		{
			name:   "unknown gas",
			mutate: func(d *Document) { d.FactorSets[0].Factors["CO"] = 1 },
			want:   `unknown gas "CO"`,
		},
		{
			name:   "gas named twice in factors",
			mutate: func(d *Document) { d.FactorSets[0].Factors["co2"] = 3 },
			want:   "Document.FactorSets[0].Factors names the same gas more than once",
		},
		{
			name:   "gas named twice in gwp overrides",
			mutate: func(d *Document) { d.GWPValues = map[string]float64{"CH4": 30, " ch4": 28} },
			want:   "Document.GWPValues names the same gas more than once",
		},
		{
			name:   "unknown scope",
			mutate: func(d *Document) { d.FactorSets[0].Scope = "scope3" },
			want:   `unknown scope "scope3"`,
		},
		{
			name:   "unknown period",
			mutate: func(d *Document) { d.Targets[0].Period = "Weekly" },
			want:   `unknown period "Weekly"`,
		},
		{
			name:   "unknown gwp preset",
			mutate: func(d *Document) { d.GWP = "SAR" },
			want:   `unknown GWP preset "SAR"`,
		},
		{
			name:   "target end before start",
			mutate: func(d *Document) { d.Targets[0].End = d.Targets[0].Start },
			want:   "Document.Targets[0].end must be after Start",
		},
		{
			name:   "target without start",
			mutate: func(d *Document) { d.Targets[1].Start = Date{} },
			want:   "Document.Targets[1].start is required",
		},
		{
			name:   "consumption without fuel",
			mutate: func(d *Document) { d.Vehicles[1].Consumption[0].Fuel = "" },
			want:   "Document.Vehicles[1].Consumption[0].Fuel is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := loadFleet(t)
			tt.mutate(doc)

			err := Validate(doc, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScenario)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Contains(t, vErr.Error(), tt.want)
		})
	}
}

func TestValidate_CaseVariantGasKeys(t *testing.T) {
	const content = `factorSets:
  - fuel: diesel
    factors:
      CO2: 2.64
      co2: 3.00
vehicles:
  - id: VAN-01
    co2GramsPerKm: 120
    kmTravelled: 1000
    consumption:
      - fuel: diesel
        quantity: 100
`
	doc, err := Decode(strings.NewReader(content), FormatYAML)
	require.NoError(t, err)

	for _, strict := range []bool{false, true} {
		err := Validate(doc, strict)
		require.ErrorIs(t, err, ErrInvalidScenario)
		assert.Contains(t, err.Error(), "names the same gas more than once")
	}

	// The registry refuses the document on its own, with the same error
	// whatever order the map yields its keys in.
	for range 50 {
		_, err := doc.Registry()
		require.ErrorIs(t, err, carbon.ErrDuplicateGas)
		assert.Equal(t, `factor set "diesel": duplicate kyoto gas: "CO2" and "co2" both name CO2`, err.Error())
	}
}

func TestValidate_StrictRejectsNegatives(t *testing.T) {
	doc := loadFleet(t)
	doc.Vehicles[0].KmTravelled = -10
	doc.Vehicles[1].Consumption[1].Quantity = -5
	doc.FactorSets[2].Factors["CO2"] = -0.5
	doc.GWPValues = map[string]float64{"CH4": -1}

	require.NoError(t, Validate(doc, false), "permissive mode accepts negative inputs")

	err := Validate(doc, true)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Issues, 4)
	assert.Contains(t, err.Error(), "Document.Vehicles[0].KmTravelled must be >= 0")
	assert.Contains(t, err.Error(), "Document.Vehicles[1].Consumption[1].Quantity must be >= 0")
}

func TestValidate_StrictTargetCurrent(t *testing.T) {
	doc := loadFleet(t)
	negative := -1.0
	doc.Targets[1].Current = &negative

	require.NoError(t, Validate(doc, false))
	assert.ErrorIs(t, Validate(doc, true), ErrInvalidScenario)
}
