package target

const (
	severityOffTrack  = 3
	severityAtRisk    = 2
	severityOnTrack   = 1
	severityCompleted = 0
)

// statusSeverity maps Status to numeric severity for comparison.
// Higher values indicate a worse outlook.
var statusSeverity = map[Status]int{ //nolint:gochecknoglobals // Constant lookup table
	StatusOffTrack:  severityOffTrack,
	StatusAtRisk:    severityAtRisk,
	StatusOnTrack:   severityOnTrack,
	StatusCompleted: severityCompleted,
}

// AggregateStatus returns the worst status across several targets.
//
// The aggregation uses "worst wins" logic:
//   - off-track > at-risk > on-track > completed
//
// An empty list is on-track.
func AggregateStatus(statuses []Status) Status {
	if len(statuses) == 0 {
		return StatusOnTrack
	}

	worst := StatusCompleted
	for _, s := range statuses {
		if statusSeverity[s] > statusSeverity[worst] {
			worst = s
		}
	}
	return worst
}
