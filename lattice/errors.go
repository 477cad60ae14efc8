package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrInvalidSize indicates N < 2: too small to hold a single 2x2 plaquette.
	ErrInvalidSize = errors.New("lattice: size must be >= 2")

	// ErrOutOfRange indicates a vertex or edge coordinate outside the lattice.
	ErrOutOfRange = errors.New("lattice: coordinate out of range")
)
