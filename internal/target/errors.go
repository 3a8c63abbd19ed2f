package target

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownPeriod indicates a period name other than Monthly or Annual.
var ErrUnknownPeriod = constError("unknown target period")
