package scenario

import (
	"strings"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for scenario loading and evaluation.
var (
	// ErrFactorNotFound indicates no factor set covers a fuel at a given date.
	ErrFactorNotFound = constError("emission factor not found")

	// ErrUnknownGWPPreset indicates a GWP preset name that is not defined.
	ErrUnknownGWPPreset = constError("unknown GWP preset")

	// ErrUnsupportedFormat indicates a scenario file extension other than
	// .yaml, .yml or .json.
	ErrUnsupportedFormat = constError("unsupported scenario format")

	// ErrEmptyDocument indicates a scenario file with no content.
	ErrEmptyDocument = constError("empty scenario document")

	// ErrInvalidScenario is matched by every ValidationError.
	ErrInvalidScenario = constError("invalid scenario")
)

// ValidationError lists every problem found in a scenario document.
type ValidationError struct {
	Issues []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return string(ErrInvalidScenario) + ": " + strings.Join(e.Issues, "; ")
}

// Is reports whether target is ErrInvalidScenario.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidScenario
}
