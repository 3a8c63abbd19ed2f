package target

const (
	// AtRiskTolerance is the multiple of the target a projection may reach
	// before the target is off-track. Projections above the target but within
	// this tolerance are at-risk.
	AtRiskTolerance = 1.15

	// MinTotalDays floors the target window length.
	MinTotalDays = 1.0

	// MinElapsedDays floors the elapsed time so a projection at the exact start
	// instant does not divide by zero.
	MinElapsedDays = 0.01

	// PercentageMultiplier converts a ratio to a percentage.
	PercentageMultiplier = 100.0

	hoursPerDay = 24.0
)

// quarter is one milestone of an annual target.
type quarter struct {
	label    string
	fraction float64
}

// annualQuarters are the cumulative fractions of the window for each quarter.
var annualQuarters = [...]quarter{ //nolint:gochecknoglobals // Constant lookup table
	{label: "Q1", fraction: 0.25},
	{label: "Q2", fraction: 0.50},
	{label: "Q3", fraction: 0.75},
	{label: "Q4", fraction: 1.00},
}
