package heatbath

import "errors"

// Sentinel errors for the heat-bath sampler.
var (
	// ErrInvalidWeights indicates a Weights value with a non-positive or
	// non-finite component. Validation runs once, at NewWeights; Step never
	// re-validates the same weights on every draw.
	ErrInvalidWeights = errors.New("heatbath: all six weights must be finite and > 0")

	// ErrFrozen indicates Step (or StepBatch) found the flippable index
	// empty: a normal terminal observation, not an invariant violation.
	ErrFrozen = errors.New("heatbath: lattice is frozen (no flippable plaquette)")
)
