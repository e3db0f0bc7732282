package scenario

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for scenario assembly. Compare with errors.Is().
var (
	// ErrInvalidMix indicates an energy mix with inconsistent or negative
	// sizing.
	ErrInvalidMix = constError("invalid energy mix")

	// ErrUnknownScenario indicates a preset name with no registered
	// scenario.
	ErrUnknownScenario = constError("unknown scenario")
)
