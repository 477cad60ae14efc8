// Package flip catalogs the ten flippable 2x2 plaquette patterns, maintains
// the incremental flippable-site index over a lattice, and implements the
// plaquette update primitive.
//
// A plaquette's four corners are always read in a fixed NW, NE, SE, SW
// traversal order regardless of whether the anchor is an up-flip or a
// down-flip. Both orientations produce the identical corner-adjacency
// shape (NW-NE share a row, NE-SE share a column, SE-SW share a row,
// SW-NW share a column) — only the mapping from an anchor's (R, C) to
// absolute lattice coordinates differs — so a single catalog and a single
// edge-recomputation routine serve both directions.
package flip

// Direction distinguishes an up-flip anchor from a down-flip anchor.
type Direction uint8

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Anchor identifies a plaquette by its lattice anchor point and direction,
// per spec §4.3: an up-flip anchored at (R,C) targets
// {(R-1,C),(R-1,C+1),(R,C+1),(R,C)}; a down-flip anchored at (R,C) targets
// {(R,C-1),(R,C),(R+1,C),(R+1,C-1)}.
type Anchor struct {
	R, C int
	Dir  Direction
}

// Corners returns the plaquette's four vertex coordinates in fixed NW, NE,
// SE, SW traversal order.
func (a Anchor) Corners() [4][2]int {
	if a.Dir == Up {
		return [4][2]int{
			{a.R - 1, a.C},
			{a.R - 1, a.C + 1},
			{a.R, a.C + 1},
			{a.R, a.C},
		}
	}
	return [4][2]int{
		{a.R, a.C - 1},
		{a.R, a.C},
		{a.R + 1, a.C},
		{a.R + 1, a.C - 1},
	}
}

// InBounds reports whether every corner of a's plaquette addresses a
// vertex of an N×N lattice.
func (a Anchor) InBounds(n int) bool {
	for _, p := range a.Corners() {
		if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
			return false
		}
	}
	return true
}
