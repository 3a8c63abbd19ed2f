package carbon

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for parsing gas and scope identifiers. The calculation
// functions themselves never return errors.
var (
	// ErrUnknownGas indicates a symbol outside the Kyoto gas set.
	ErrUnknownGas = constError("unknown kyoto gas")

	// ErrDuplicateGas indicates two symbols in one map naming the same gas.
	ErrDuplicateGas = constError("duplicate kyoto gas")

	// ErrUnknownScope indicates an unrecognized emission scope.
	ErrUnknownScope = constError("unknown emission scope")
)
