package target

import (
	"time"

	"github.com/rshade/fleetcarbon/internal/carbon"
)

// CalculateMilestones builds the four quarterly checkpoints of an annual target.
//
// Quarter i falls at start + window × fraction[i] and expects
// Round2(target × fraction[i]) cumulative emissions. A checkpoint whose date has
// passed is on track when current emissions stay within its expected value; a
// future checkpoint is on track when the consumed percentage has not yet
// reached fraction[i] × 100.
func CalculateMilestones(
	targetValue float64,
	currentEmissions float64,
	percentage float64,
	start time.Time,
	end time.Time,
	now time.Time,
) []Milestone {
	window := end.Sub(start)
	milestones := make([]Milestone, 0, len(annualQuarters))

	for _, q := range annualQuarters {
		date := start.Add(time.Duration(float64(window) * q.fraction))
		expected := carbon.Round2(targetValue * q.fraction)
		achieved := !now.Before(date)

		var onTrack bool
		if achieved {
			onTrack = currentEmissions <= expected
		} else {
			onTrack = percentage <= q.fraction*PercentageMultiplier
		}

		milestones = append(milestones, Milestone{
			Label:         q.label,
			Date:          date,
			ExpectedValue: expected,
			Achieved:      achieved,
			OnTrack:       onTrack,
		})
	}

	return milestones
}
