package initial

import "errors"

// Sentinel errors for initial-state generation.
var (
	// ErrInvalidSize indicates N < 2.
	ErrInvalidSize = errors.New("initial: size must be >= 2")

	// ErrInvalidInitialState indicates MaterializeEdges followed by
	// CheckIceRule found at least one violation. This is a programmer error
	// in dwbcHighType/dwbcLowType, never a runtime input condition.
	ErrInvalidInitialState = errors.New("initial: generated state violates the ice rule")

	// ErrUnknownVariant indicates a Variant value outside {High, Low}.
	ErrUnknownVariant = errors.New("initial: unknown variant")
)
