// Package initial builds the two deterministic Domain-Wall Boundary
// Condition ground states — DWBC-High and DWBC-Low — that every Simulation
// starts from.
//
// Both builders are pure functions of (r, c, N): the vertex-type pattern is
// read once per coordinate with no cross-coordinate dependency, which is
// what lets Generate fill Vertices in a single deterministic row-major
// pass and then delegate to lattice.MaterializeEdges for the edge arrays.
// The vertex-type pattern is taken as ground truth (see DESIGN.md's Open
// Question decisions); edges are never set independently of it.
package initial

import "fmt"

// Variant selects which of the two DWBC ground states Generate builds.
type Variant uint8

const (
	// High is the DWBC-High ground state: anti-diagonal c2, upper-left b1,
	// lower-right b2.
	High Variant = iota
	// Low is the DWBC-Low ground state: main-diagonal c2, upper-right a1,
	// lower-left a2.
	Low
)

func (v Variant) String() string {
	switch v {
	case High:
		return "High"
	case Low:
		return "Low"
	default:
		return fmt.Sprintf("initial.Variant(%d)", uint8(v))
	}
}

func (v Variant) valid() bool {
	return v == High || v == Low
}
