package emissions

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the calculation functions. Compare with
// errors.Is().
var (
	// ErrNegativeInput indicates a negative distance, weight, capacity, or
	// vehicle count. None of the modeled quantities can be negative.
	ErrNegativeInput = constError("negative input value")

	// ErrNotFinite indicates a NaN or infinite input or result.
	ErrNotFinite = constError("value is not finite")

	// ErrUnknownGas indicates an inventory key with no GWP100 weight.
	ErrUnknownGas = constError("unknown greenhouse gas")

	// ErrNegativeMass indicates a negative emitted mass in an inventory.
	ErrNegativeMass = constError("negative emitted mass")
)
