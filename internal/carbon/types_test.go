package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllGases_FixedOrder(t *testing.T) {
	gases := AllGases()
	require.Len(t, gases, NumGases)

	symbols := make([]string, 0, len(gases))
	for _, g := range gases {
		symbols = append(symbols, g.String())
	}
	assert.Equal(t, []string{"CO2", "CH4", "N2O", "HFC", "PFC", "SF6", "NF3"}, symbols)
}

func TestAllGases_ReturnsCopy(t *testing.T) {
	first := AllGases()
	first[0] = GasNF3
	assert.Equal(t, GasCO2, AllGases()[0])
}

func TestParseGas(t *testing.T) {
	tests := []struct {
		in      string
		want    Gas
		wantErr bool
	}{
		{in: "CO2", want: GasCO2},
		{in: "ch4", want: GasCH4},
		{in: " n2o ", want: GasN2O},
		{in: "NF3", want: GasNF3},
		{in: "H2O", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGas(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownGas)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGas_TextRoundTrip(t *testing.T) {
	for _, g := range AllGases() {
		text, err := g.MarshalText()
		require.NoError(t, err)

		var parsed Gas
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, g, parsed)
	}

	_, err := Gas(42).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownGas)
	assert.Equal(t, "Gas(42)", Gas(42).String())
}

func TestPerGas_MapAlwaysHasAllGases(t *testing.T) {
	var empty PerGas
	m := empty.Map()
	assert.Len(t, m, NumGases)
	for _, g := range AllGases() {
		v, ok := m[g.String()]
		assert.True(t, ok, "missing %s", g)
		assert.Zero(t, v)
	}
}

func TestPerGasFromMap(t *testing.T) {
	p, err := PerGasFromMap(map[string]float64{"CO2": 2.64, "ch4": 0.0001})
	require.NoError(t, err)
	assert.InDelta(t, 2.64, p[GasCO2], floatTolerance)
	assert.InDelta(t, 0.0001, p[GasCH4], floatTolerance)
	assert.Zero(t, p[GasSF6])

	_, err = PerGasFromMap(map[string]float64{"CO": 1})
	assert.ErrorIs(t, err, ErrUnknownGas)
}

func TestPerGasFromMap_DuplicateGas(t *testing.T) {
	for range 50 {
		_, err := PerGasFromMap(map[string]float64{"CO2": 2.64, "co2": 3.00, "CH4": 0.0001})
		require.ErrorIs(t, err, ErrDuplicateGas)
		assert.Equal(t, `duplicate kyoto gas: "CO2" and "co2" both name CO2`, err.Error())
	}
}

func TestPerGas_Overlay(t *testing.T) {
	p := PerGas{GasCO2: 1, GasCH4: 25}
	require.NoError(t, p.Overlay(map[string]float64{"ch4": 28}))
	assert.InDelta(t, 1.0, p[GasCO2], floatTolerance)
	assert.InDelta(t, 28.0, p[GasCH4], floatTolerance)

	assert.ErrorIs(t, p.Overlay(map[string]float64{"SF6": 1, " sf6 ": 2}), ErrDuplicateGas)
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		in      string
		want    Scope
		wantErr bool
	}{
		{in: "", want: ScopeUnspecified},
		{in: "scope1", want: Scope1},
		{in: "Scope2", want: Scope2},
		{in: "1", want: Scope1},
		{in: "scope3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScope(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownScope)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "scope1", Scope1.String())
	assert.Equal(t, "scope2", Scope2.String())
}
