package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleetcarbon/internal/carbon"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-03-01", want: day(2024, time.March, 1)},
		{in: " 2024-03-01 ", want: day(2024, time.March, 1)},
		{in: "2024-03-01T12:30:00Z", want: time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)},
		{in: "March 1st", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time))
		})
	}
}

func TestDate_MarshalText(t *testing.T) {
	text, err := NewDate(day(2024, time.March, 1)).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", string(text))

	text, err = NewDate(time.Date(2024, time.March, 1, 6, 0, 0, 0, time.UTC)).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T06:00:00Z", string(text))

	text, err = Date{}.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestDate_UnmarshalTextEmpty(t *testing.T) {
	d := NewDate(day(2024, time.March, 1))
	require.NoError(t, d.UnmarshalText(nil))
	assert.True(t, d.IsZero())
}

func TestDocument_ResolveGWP(t *testing.T) {
	t.Run("document preset wins over fallback", func(t *testing.T) {
		doc := &Document{GWP: "AR6"}
		gwp, name, err := doc.ResolveGWP("AR4")
		require.NoError(t, err)
		assert.Equal(t, "AR6", name)
		assert.InDelta(t, 27.9, gwp[carbon.GasCH4], floatTolerance)
	})

	t.Run("fallback when unset", func(t *testing.T) {
		gwp, name, err := (&Document{}).ResolveGWP("AR4")
		require.NoError(t, err)
		assert.Equal(t, "AR4", name)
		assert.InDelta(t, 25.0, gwp[carbon.GasCH4], floatTolerance)
	})

	t.Run("default preset without fallback", func(t *testing.T) {
		_, name, err := (&Document{}).ResolveGWP("")
		require.NoError(t, err)
		assert.Equal(t, DefaultGWPPreset, name)
	})

	t.Run("overrides apply on top of preset", func(t *testing.T) {
		doc := &Document{GWP: "ar5", GWPValues: map[string]float64{"CH4": 30}}
		gwp, name, err := doc.ResolveGWP("")
		require.NoError(t, err)
		assert.Equal(t, "AR5+custom", name)
		assert.InDelta(t, 30.0, gwp[carbon.GasCH4], floatTolerance)
		assert.InDelta(t, 265.0, gwp[carbon.GasN2O], floatTolerance)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, _, err := (&Document{GWP: "SAR"}).ResolveGWP("")
		assert.ErrorIs(t, err, ErrUnknownGWPPreset)
	})

	t.Run("gas overridden twice", func(t *testing.T) {
		doc := &Document{GWPValues: map[string]float64{"N2O": 265, "n2o": 298}}
		_, _, err := doc.ResolveGWP("")
		assert.ErrorIs(t, err, carbon.ErrDuplicateGas)
	})

	t.Run("unknown gas override", func(t *testing.T) {
		_, _, err := (&Document{GWPValues: map[string]float64{"H2O": 1}}).ResolveGWP("")
		assert.ErrorIs(t, err, carbon.ErrUnknownGas)
	})
}

func TestDocument_Registry(t *testing.T) {
	doc := &Document{FactorSets: []FactorSetSpec{
		{Fuel: "diesel", Factors: map[string]float64{"CO2": 2.6, "N2O": 0.0001}},
		{Fuel: "electricity", Scope: "scope2", Factors: map[string]float64{"CO2": 0.05}},
	}}

	registry, err := doc.Registry()
	require.NoError(t, err)

	diesel, err := registry.Resolve("diesel", day(2024, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, carbon.Scope1, diesel.Scope)
	assert.InDelta(t, 0.0001, diesel.Factors[carbon.GasN2O], floatTolerance)

	electricity, err := registry.Resolve("electricity", day(2024, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, carbon.Scope2, electricity.Scope)
}

func TestDocument_RegistryRejectsUnknownGas(t *testing.T) {
	doc := &Document{FactorSets: []FactorSetSpec{
		{Fuel: "diesel", Factors: map[string]float64{"CO": 1}},
	}}
	_, err := doc.Registry()
	assert.ErrorIs(t, err, carbon.ErrUnknownGas)
}
