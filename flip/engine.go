package flip

import (
	"github.com/katalvlaran/sixvertex/lattice"
	"github.com/katalvlaran/sixvertex/vertex"
)

// ReadTuple reads the current four corner vertex types at anchor's
// plaquette, in NW, NE, SE, SW order. Caller must ensure anchor is in
// bounds.
func ReadTuple(state *lattice.State, anchor Anchor) Tuple {
	corners := anchor.Corners()
	var t Tuple
	for i, p := range corners {
		t[i] = state.VertexAt(p[0], p[1])
	}
	return t
}

// Apply performs the plaquette update primitive (spec §4.3): it reads the
// four current corner types, verifies the tuple is catalogued, replaces
// the four types with the counterpart, and re-derives the plaquette's
// interior edges from the new types so HEdges/VEdges stay consistent with
// Vertices. It does not touch the flippable-site index; callers rescan the
// affected anchors themselves (see Index.Refresh) since Apply has no
// opinion on what else needs reindexing.
//
// Complexity: O(1).
func Apply(state *lattice.State, anchor Anchor) error {
	if !anchor.InBounds(state.N) {
		return ErrOutOfRange
	}
	corners := anchor.Corners()
	var current Tuple
	for i, p := range corners {
		current[i] = state.VertexAt(p[0], p[1])
	}
	next, ok := Counterpart(current)
	if !ok {
		return ErrNotFlippable
	}
	for i, p := range corners {
		state.SetVertexType(p[0], p[1], next[i])
	}
	recomputeInteriorEdges(state, corners)
	return nil
}

// recomputeInteriorEdges re-derives the plaquette's four interior edges
// (one horizontal pair, one vertical pair — see package doc) from the
// corners' current vertex types, following the same canonical-writer
// convention as lattice.MaterializeEdges: an edge's value is read from
// whichever corner is its "right" or "bottom" member, taken directly
// (never inverted) from that corner's local Left/Top tag.
func recomputeInteriorEdges(state *lattice.State, corners [4][2]int) {
	nw, ne, se, sw := corners[0], corners[1], corners[2], corners[3]

	neCfg := vertex.ConfigOf(state.VertexAt(ne[0], ne[1]))
	seCfg := vertex.ConfigOf(state.VertexAt(se[0], se[1]))
	swCfg := vertex.ConfigOf(state.VertexAt(sw[0], sw[1]))

	topHRow, topHCol := nw[0], maxInt(nw[1], ne[1])
	bottomHRow, bottomHCol := sw[0], maxInt(sw[1], se[1])
	leftVRow, leftVCol := maxInt(nw[0], sw[0]), nw[1]
	rightVRow, rightVCol := maxInt(ne[0], se[0]), ne[1]

	state.SetHEdge(topHRow, topHCol, neCfg.Left)
	state.SetHEdge(bottomHRow, bottomHCol, seCfg.Left)
	state.SetVEdge(leftVRow, leftVCol, swCfg.Top)
	state.SetVEdge(rightVRow, rightVCol, seCfg.Top)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
