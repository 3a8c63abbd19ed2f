package target

import (
	"math"
	"time"

	"github.com/rshade/fleetcarbon/internal/carbon"
)

// CalculateProgress evaluates a target at the reference time now.
//
//	Percentage = Round2(current / target × 100), or 0 when target is 0
//	Remaining  = Round2(target - current)
//
// Status follows CalculateStatus. Annual targets also get four quarterly
// milestones; monthly targets get none. now is never read from the clock.
func CalculateProgress(
	targetValue float64,
	currentEmissions float64,
	start time.Time,
	end time.Time,
	now time.Time,
	period Period,
) Progress {
	progress := Progress{
		TargetValue:  targetValue,
		CurrentValue: currentEmissions,
		Remaining:    carbon.Round2(targetValue - currentEmissions),
		Milestones:   []Milestone{},
	}

	if targetValue != 0 {
		progress.Percentage = carbon.Round2((currentEmissions / targetValue) * PercentageMultiplier)
	}

	progress.Status = CalculateStatus(targetValue, currentEmissions, start, end, now)
	if progress.Status != StatusCompleted {
		progress.Projection = carbon.Round2(
			CalculateProjection(currentEmissions, start, end, now),
		)
	}

	if period == PeriodAnnual {
		progress.Milestones = CalculateMilestones(
			targetValue, currentEmissions, progress.Percentage, start, end, now,
		)
	}

	return progress
}

// CalculateStatus classifies a target:
//
//   - now >= end: completed
//   - projection <= target: on-track
//   - projection <= target × 1.15: at-risk
//   - otherwise: off-track
func CalculateStatus(targetValue, currentEmissions float64, start, end, now time.Time) Status {
	if !now.Before(end) {
		return StatusCompleted
	}

	projection := CalculateProjection(currentEmissions, start, end, now)
	switch {
	case projection <= targetValue:
		return StatusOnTrack
	case projection <= targetValue*AtRiskTolerance:
		return StatusAtRisk
	default:
		return StatusOffTrack
	}
}

// CalculateProjection extrapolates emissions to the end of the window at the
// average daily rate observed so far:
//
//	projection = (current / daysElapsed) × totalDays
//
// totalDays is floored to 1 and daysElapsed to 0.01, so a window of zero
// length or a reference time at (or before) the start never divides by zero.
func CalculateProjection(currentEmissions float64, start, end, now time.Time) float64 {
	totalDays := math.Max(daysBetween(start, end), MinTotalDays)
	daysElapsed := math.Max(daysBetween(start, now), MinElapsedDays)
	return (currentEmissions / daysElapsed) * totalDays
}

// daysBetween returns the fractional number of days from a to b.
func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / hoursPerDay
}
