package flip

import "errors"

// Sentinel errors for the flip engine.
var (
	// ErrNotFlippable indicates the plaquette's current four-vertex tuple is
	// not one of the catalogued flippable patterns. This is an invariant
	// violation in any caller that consults the flippable-site index first,
	// never a normal terminal observation (contrast heatbath.ErrFrozen).
	ErrNotFlippable = errors.New("flip: plaquette is not flippable")

	// ErrOutOfRange indicates the anchor's 2x2 footprint falls outside the
	// lattice (e.g. an up-flip anchored at row 0).
	ErrOutOfRange = errors.New("flip: anchor footprint out of lattice bounds")
)
