// Package lattice holds the N×N six-vertex lattice state: a primary
// vertex-type array plus the boundary-inclusive horizontal and vertical
// edge arrays, kept mutually consistent under the ice rule.
//
// Both representations are materialized at all times: Vertices is the
// source of truth for type-dependent Boltzmann weights, while HEdges and
// VEdges are the source of truth for the ice rule and the height function
// (spec §3.2). State itself does not enforce that invariant on every
// mutation — CheckIceRule validates it on demand — so that the flip engine
// (package flip) can perform the small, ordered sequence of writes a single
// plaquette update requires without paying for a full-lattice re-check
// after each one.
//
// Edge-tag convention (global, spec §3.1): a horizontal edge's tag In means
// its arrow points left-to-right; Out means right-to-left. A vertical
// edge's tag In means top-to-bottom; Out means bottom-to-top. A vertex's
// local "left is In" reading (vertex.Config) is derived by whether that
// global direction flows into the vertex: for a vertex's own left and top
// edges the local tag equals the global tag directly; for its right and
// bottom edges the local tag is the global tag's Invert (see ConfigAt).
package lattice

import "github.com/katalvlaran/sixvertex/vertex"

// State is the packed representation of an N×N six-vertex lattice.
//
// Vertices is row-major, N*N entries, index r*N+c.
// HEdges is row-major, N rows of N+1 entries; HEdges[r][c] is the
// horizontal edge immediately to the left of vertex (r,c), for c in
// 0..N-1, and HEdges[r][N] is the boundary edge to the right of (r,N-1).
// VEdges is row-major, N+1 rows of N entries; VEdges[r][c] is the
// vertical edge immediately above vertex (r,c), for r in 0..N-1, and
// VEdges[N][c] is the boundary edge below (N-1,c).
//
// This is the arena-backed flat-buffer layout spec §9 calls for: all three
// arrays are plain slices indexed by r*stride+c, no pointer-chasing.
type State struct {
	N        int
	Vertices []vertex.VertexType
	HEdges   []vertex.EdgeTag // N rows x (N+1) cols
	VEdges   []vertex.EdgeTag // (N+1) rows x N cols
}

// New allocates a zero-valued N×N lattice (every vertex A1, every edge In).
// Callers populate it via SetVertexType followed by MaterializeEdges, or
// use package initial to build a DWBC-consistent starting state directly.
//
// Complexity: O(N^2) time and memory.
func New(n int) (*State, error) {
	if n < 2 {
		return nil, ErrInvalidSize
	}
	return &State{
		N:        n,
		Vertices: make([]vertex.VertexType, n*n),
		HEdges:   make([]vertex.EdgeTag, n*(n+1)),
		VEdges:   make([]vertex.EdgeTag, (n+1)*n),
	}, nil
}

// InBounds reports whether (r,c) addresses a vertex of the lattice.
//
// Complexity: O(1).
func (s *State) InBounds(r, c int) bool {
	return r >= 0 && r < s.N && c >= 0 && c < s.N
}

// vertexIndex maps a vertex coordinate to its flat index.
func (s *State) vertexIndex(r, c int) int {
	return r*s.N + c
}

// hIndex maps a horizontal-edge coordinate (row, col in 0..N) to its flat index.
func (s *State) hIndex(r, c int) int {
	return r*(s.N+1) + c
}

// vIndex maps a vertical-edge coordinate (row in 0..N, col) to its flat index.
func (s *State) vIndex(r, c int) int {
	return r*s.N + c
}

// VertexAt returns the vertex type at (r,c). Panics if out of range, since
// every caller within this module addresses positions it has already
// validated; see InBounds for a checked query.
//
// Complexity: O(1).
func (s *State) VertexAt(r, c int) vertex.VertexType {
	return s.Vertices[s.vertexIndex(r, c)]
}

// SetVertexType sets the vertex type at (r,c) without touching any edge.
// Callers are responsible for keeping HEdges/VEdges consistent afterward
// (see MaterializeEdges, or flip.Apply for the incremental case).
//
// Complexity: O(1).
func (s *State) SetVertexType(r, c int, t vertex.VertexType) {
	s.Vertices[s.vertexIndex(r, c)] = t
}

// CheckedSetVertexType is SetVertexType's checked counterpart, for callers
// addressing coordinates derived from external, untrusted input (see
// persist.Decode) rather than coordinates this package has already
// validated internally. Returns ErrOutOfRange instead of panicking when
// (r,c) falls outside the lattice.
//
// Complexity: O(1).
func (s *State) CheckedSetVertexType(r, c int, t vertex.VertexType) error {
	if !s.InBounds(r, c) {
		return ErrOutOfRange
	}
	s.SetVertexType(r, c, t)
	return nil
}

// HEdge returns the horizontal edge tag to the left of vertex (r,c), or the
// right boundary edge when c == N.
//
// Complexity: O(1).
func (s *State) HEdge(r, c int) vertex.EdgeTag {
	return s.HEdges[s.hIndex(r, c)]
}

// SetHEdge sets the horizontal edge tag at (r,c) (see HEdge for indexing).
//
// Complexity: O(1).
func (s *State) SetHEdge(r, c int, tag vertex.EdgeTag) {
	s.HEdges[s.hIndex(r, c)] = tag
}

// VEdge returns the vertical edge tag above vertex (r,c), or the bottom
// boundary edge when r == N.
//
// Complexity: O(1).
func (s *State) VEdge(r, c int) vertex.EdgeTag {
	return s.VEdges[s.vIndex(r, c)]
}

// SetVEdge sets the vertical edge tag at (r,c) (see VEdge for indexing).
//
// Complexity: O(1).
func (s *State) SetVEdge(r, c int, tag vertex.EdgeTag) {
	s.VEdges[s.vIndex(r, c)] = tag
}

// ConfigAt reconstructs the local vertex.Config implied by the edge arrays
// at (r,c), independent of Vertices[r,c] — used by CheckIceRule to verify
// the two representations agree.
//
// Complexity: O(1).
func (s *State) ConfigAt(r, c int) vertex.Config {
	return vertex.Config{
		Left:   s.HEdge(r, c),
		Right:  s.HEdge(r, c+1).Invert(),
		Top:    s.VEdge(r, c),
		Bottom: s.VEdge(r+1, c).Invert(),
	}
}

// MaterializeEdges derives HEdges and VEdges from Vertices in a single
// pass. Each edge is written from exactly one canonical source vertex (the
// one whose local Left/Top tag equals the edge's global tag directly), so
// no edge is ever written twice from conflicting sources:
//
//   - HEdges[r][c], c in 0..N-1, is Vertices[r][c].Left.
//   - HEdges[r][N] (right boundary) is Vertices[r][N-1].Right, inverted.
//   - VEdges[r][c], r in 0..N-1, is Vertices[r][c].Top.
//   - VEdges[N][c] (bottom boundary) is Vertices[N-1][c].Bottom, inverted.
//
// Complexity: O(N^2).
func (s *State) MaterializeEdges() {
	n := s.N
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cfg := vertex.ConfigOf(s.VertexAt(r, c))
			s.SetHEdge(r, c, cfg.Left)
			s.SetVEdge(r, c, cfg.Top)
		}
		rightCfg := vertex.ConfigOf(s.VertexAt(r, n-1))
		s.SetHEdge(r, n, rightCfg.Right.Invert())
	}
	for c := 0; c < n; c++ {
		bottomCfg := vertex.ConfigOf(s.VertexAt(n-1, c))
		s.SetVEdge(n, c, bottomCfg.Bottom.Invert())
	}
}

// Clone returns a deep copy of s; the copy shares no backing array with s.
//
// Complexity: O(N^2).
func (s *State) Clone() *State {
	out := &State{
		N:        s.N,
		Vertices: make([]vertex.VertexType, len(s.Vertices)),
		HEdges:   make([]vertex.EdgeTag, len(s.HEdges)),
		VEdges:   make([]vertex.EdgeTag, len(s.VEdges)),
	}
	copy(out.Vertices, s.Vertices)
	copy(out.HEdges, s.HEdges)
	copy(out.VEdges, s.VEdges)
	return out
}

// CheckIceRule reports the number of vertices whose edge-array-derived
// configuration either violates the ice rule (not a valid vertex.Config) or
// disagrees with Vertices[r][c] (spec §3.2's Consistency invariant).
//
// Complexity: O(N^2).
func (s *State) CheckIceRule() int {
	violations := 0
	for r := 0; r < s.N; r++ {
		for c := 0; c < s.N; c++ {
			got, err := vertex.TypeOf(s.ConfigAt(r, c))
			if err != nil || got != s.VertexAt(r, c) {
				violations++
			}
		}
	}
	return violations
}
