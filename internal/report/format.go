package report

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatKg formats a kilogram value with thousand separators and two decimals.
// Example: FormatKg(1234.5) returns "1,234.50".
func FormatKg(v float64) string {
	return formatFixed(v, 2)
}

// FormatPercent formats a percentage with an explicit sign, e.g. "+23.39%".
func FormatPercent(v float64) string {
	s := formatFixed(v, 2)
	if v > 0 {
		s = "+" + s
	}
	return s + "%"
}

// formatFixed rounds v to precision decimals and groups the integer part.
func formatFixed(v float64, precision int) string {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(math.Abs(v)*multiplier) / multiplier

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, fracPart, hasFrac := strings.Cut(formatted, ".")

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}

	out := printer.Sprintf("%d", whole)
	if hasFrac {
		out += "." + fracPart
	}
	if v < 0 && rounded != 0 {
		out = "-" + out
	}
	return out
}

// formatDate formats t as a calendar date.
func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
