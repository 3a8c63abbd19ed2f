package scenario

import (
	"sort"
	"strings"

	"github.com/rshade/fleetcarbon/internal/carbon"
)

// DefaultGWPPreset is used when neither the document nor the configuration
// names a preset.
const DefaultGWPPreset = "AR5"

// gwpPresets maps IPCC assessment reports to their 100-year GWP values, in
// carbon.Gas order (CO2, CH4, N2O, HFC, PFC, SF6, NF3).
//
// HFC uses HFC-134a and PFC uses CF4 (PFC-14) as representative species.
// Source: IPCC AR4 WG1 Table 2.14, AR5 WG1 Table 8.A.1, AR6 WG1 Table 7.SM.7.
var gwpPresets = map[string]carbon.PerGas{ //nolint:gochecknoglobals // Constant lookup table
	"AR4": {1, 25, 298, 1430, 7390, 22800, 17200},
	"AR5": {1, 28, 265, 1300, 6630, 23500, 16100},
	"AR6": {1, 27.9, 273, 1530, 7380, 25200, 17400},
}

// GWPPreset returns the GWP values of a named assessment report.
// Names are matched case-insensitively.
func GWPPreset(name string) (carbon.PerGas, bool) {
	values, ok := gwpPresets[strings.ToUpper(strings.TrimSpace(name))]
	return values, ok
}

// GWPPresetNames returns the known preset names in sorted order.
func GWPPresetNames() []string {
	names := make([]string, 0, len(gwpPresets))
	for name := range gwpPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
