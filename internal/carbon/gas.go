package carbon

import (
	"fmt"
	"strings"
)

// Gas identifies one of the seven Kyoto greenhouse-gas categories.
type Gas int

// Kyoto gases in their fixed iteration order.
const (
	GasCO2 Gas = iota
	GasCH4
	GasN2O
	GasHFC
	GasPFC
	GasSF6
	GasNF3
)

// NumGases is the size of the Kyoto gas set.
const NumGases = int(GasNF3) + 1

var gasSymbols = [NumGases]string{ //nolint:gochecknoglobals // Constant lookup table
	GasCO2: "CO2",
	GasCH4: "CH4",
	GasN2O: "N2O",
	GasHFC: "HFC",
	GasPFC: "PFC",
	GasSF6: "SF6",
	GasNF3: "NF3",
}

// AllGases returns the Kyoto gases in their fixed order.
// A new slice is returned on each call.
func AllGases() []Gas {
	return []Gas{GasCO2, GasCH4, GasN2O, GasHFC, GasPFC, GasSF6, GasNF3}
}

// Valid reports whether g is one of the seven Kyoto gases.
func (g Gas) Valid() bool {
	return g >= GasCO2 && g <= GasNF3
}

// String returns the chemical symbol of the gas (e.g. "CO2").
func (g Gas) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Gas(%d)", int(g))
	}
	return gasSymbols[g]
}

// MarshalText implements encoding.TextMarshaler so gases can be used as map keys.
func (g Gas) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGas, int(g))
	}
	return []byte(gasSymbols[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gas) UnmarshalText(text []byte) error {
	parsed, err := ParseGas(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGas parses a Kyoto gas symbol. Matching is case-insensitive and ignores
// surrounding whitespace.
func ParseGas(s string) (Gas, error) {
	symbol := strings.ToUpper(strings.TrimSpace(s))
	for i, candidate := range gasSymbols {
		if candidate == symbol {
			return Gas(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGas, s)
}
