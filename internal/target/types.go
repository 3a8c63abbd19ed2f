// Package target tracks progress toward emission-reduction targets using a
// linear projection of emissions accrued so far.
package target

import (
	"fmt"
	"strings"
	"time"
)

// Status classifies a target's projected outcome.
type Status int

// Target statuses. StatusCompleted is terminal: once the period has ended no
// projection is computed.
const (
	StatusOnTrack Status = iota
	StatusAtRisk
	StatusOffTrack
	StatusCompleted
)

// String returns the status label ("on-track", "at-risk", "off-track", "completed").
func (s Status) String() string {
	switch s {
	case StatusOnTrack:
		return "on-track"
	case StatusAtRisk:
		return "at-risk"
	case StatusOffTrack:
		return "off-track"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Period is the cadence of a target.
type Period int

// Target periods. Only annual targets carry quarterly milestones.
const (
	PeriodMonthly Period = iota
	PeriodAnnual
)

// String returns "Monthly" or "Annual".
func (p Period) String() string {
	switch p {
	case PeriodMonthly:
		return "Monthly"
	case PeriodAnnual:
		return "Annual"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePeriod parses "Monthly" or "Annual", case-insensitively.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return PeriodMonthly, nil
	case "annual":
		return PeriodAnnual, nil
	default:
		return PeriodMonthly, fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
	}
}

// Progress is the state of a target at a reference time.
type Progress struct {
	TargetValue  float64
	CurrentValue float64

	// Percentage is the share of the target already consumed; 0 when the target is 0.
	Percentage float64

	// Remaining is the budget left (negative once exceeded).
	Remaining float64

	Status Status

	// Projection is the linear end-of-period estimate. It is 0 for completed targets.
	Projection float64

	// Milestones holds the quarterly checkpoints of annual targets; empty otherwise.
	Milestones []Milestone
}

// Milestone is a quarterly checkpoint of an annual target.
type Milestone struct {
	// Label is the quarter name ("Q1".."Q4").
	Label string

	Date time.Time

	// ExpectedValue is the cumulative budget at Date.
	ExpectedValue float64

	// Achieved reports whether Date has passed.
	Achieved bool

	// OnTrack reports whether emissions are within budget at this checkpoint.
	OnTrack bool
}
