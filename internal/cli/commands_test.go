package cli

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleetcarbon/internal/report"
	"github.com/rshade/fleetcarbon/internal/target"
)

func TestDeltaCmd(t *testing.T) {
	clearEnv(t)

	stdout, _, err := executeCmd(t, "delta", "--theoretical", "280", "--real", "345.5")
	require.NoError(t, err)

	var out deltaOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.InDelta(t, 65.5, out.Delta.AbsoluteKg, floatTolerance)
	assert.InDelta(t, 23.39, out.Delta.Percentage, floatTolerance)
}

func TestDeltaCmd_ZeroTheoretical(t *testing.T) {
	clearEnv(t)

	stdout, _, err := executeCmd(t, "delta", "--theoretical", "0", "--real", "50", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "50.00")
	assert.Contains(t, stdout, "0.00%")
}

func TestDeltaCmd_RequiresFlags(t *testing.T) {
	clearEnv(t)

	_, _, err := executeCmd(t, "delta", "--theoretical", "280")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "real")
}

func TestTargetCmd(t *testing.T) {
	clearEnv(t)

	stdout, _, err := executeCmd(t, "target",
		"--value", "10000", "--current", "4000",
		"--start", "2024-01-01", "--end", "2025-01-01", "--now", "2024-07-02")
	require.NoError(t, err)

	var view report.TargetView
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, target.StatusOnTrack.String(), view.Status)
	assert.InDelta(t, 40.0, view.Percentage, floatTolerance)
	assert.InDelta(t, 8000.0, view.ProjectedKg, floatTolerance)
	require.Len(t, view.Milestones, 4)
	assert.Equal(t, "2024-07-02", view.Milestones[1].Date)
}

func TestTargetCmd_MonthlyTable(t *testing.T) {
	clearEnv(t)

	stdout, _, err := executeCmd(t, "target", "--name", "March",
		"--value", "800", "--current", "900", "--period", "monthly",
		"--start", "2024-03-01", "--end", "2024-04-01", "--now", "2024-03-16",
		"--output", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "March")
	assert.Contains(t, stdout, "Monthly")
	assert.Contains(t, stdout, "off-track")
	assert.NotContains(t, stdout, "Q1")
}

func TestTargetCmd_Errors(t *testing.T) {
	clearEnv(t)

	base := []string{"target", "--value", "1", "--current", "1"}
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad start", args: append(append([]string{}, base...), "--start", "Jan", "--end", "2025-01-01")},
		{name: "bad period", args: append(append([]string{}, base...), "--start", "2024-01-01", "--end", "2025-01-01", "--period", "Weekly")},
		{name: "missing end", args: append(append([]string{}, base...), "--start", "2024-01-01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCmd(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestGWPCmd(t *testing.T) {
	clearEnv(t)

	stdout, _, err := executeCmd(t, "gwp")
	require.NoError(t, err)

	var presets []gwpPresetOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &presets))
	require.Len(t, presets, 3)
	assert.Equal(t, "AR4", presets[0].Name)
	assert.InDelta(t, 28.0, presets[1].Values["CH4"], floatTolerance)
	assert.Len(t, presets[2].Values, 7)
}

func TestGWPCmd_Table(t *testing.T) {
	clearEnv(t)

	stdout, _, err := executeCmd(t, "gwp", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PRESET")
	assert.Contains(t, stdout, "NF3")
	assert.Contains(t, stdout, "27.9")
}
