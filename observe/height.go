package observe

import (
	"github.com/katalvlaran/sixvertex/lattice"
	"github.com/katalvlaran/sixvertex/vertex"
)

// HeightField is the integer-valued scalar field h: {0..N}x{0..N} -> Z of
// spec §4.5, reconstructed from a lattice's edge arrays.
type HeightField struct {
	N      int
	values [][]int // (N+1) x (N+1), row-major
}

// Height reconstructs the height field of state: h(0,0) = 0, and every
// adjacent pair's discrete gradient is ±1 per the edge tag between them —
// moving right from h(r,c-1) to h(r,c) crosses vertical edge VEdge(r,c-1),
// and an OUT tag there increments h by 1 (else -1); moving down from
// h(r-1,c) to h(r,c) crosses horizontal edge HEdge(r-1,c), and an IN tag
// there increments h by 1 (else -1).
// Well-definedness (path independence) follows from the ice rule: every
// elementary plaquette has zero discrete curl, so integrating along any
// path from the origin agrees with integrating along any other. This
// reconstruction fills row 0 left-to-right, then for each subsequent row
// derives its first column from the row above and fills the rest
// left-to-right — one particular path, as good as any other.
//
// Complexity: O(N^2).
func Height(state *lattice.State) *HeightField {
	n := state.N
	values := make([][]int, n+1)
	for i := range values {
		values[i] = make([]int, n+1)
	}

	for c := 1; c <= n; c++ {
		values[0][c] = values[0][c-1] + hDelta(state.VEdge(0, c-1))
	}
	for r := 1; r <= n; r++ {
		values[r][0] = values[r-1][0] + vDelta(state.HEdge(r-1, 0))
		for c := 1; c <= n; c++ {
			values[r][c] = values[r][c-1] + hDelta(state.VEdge(r, c-1))
		}
	}
	return &HeightField{N: n, values: values}
}

func hDelta(tag vertex.EdgeTag) int {
	if tag == vertex.Out {
		return 1
	}
	return -1
}

func vDelta(tag vertex.EdgeTag) int {
	if tag == vertex.In {
		return 1
	}
	return -1
}

// At returns h(r,c) for r,c in [0, N].
func (h *HeightField) At(r, c int) int {
	return h.values[r][c]
}

// Volume returns the sum of h over its entire domain.
func (h *HeightField) Volume() int {
	sum := 0
	for _, row := range h.values {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// Min returns the minimum value of h.
func (h *HeightField) Min() int {
	return h.extreme(func(a, b int) bool { return a < b })
}

// Max returns the maximum value of h.
func (h *HeightField) Max() int {
	return h.extreme(func(a, b int) bool { return a > b })
}

func (h *HeightField) extreme(better func(a, b int) bool) int {
	best := h.values[0][0]
	for _, row := range h.values {
		for _, v := range row {
			if better(v, best) {
				best = v
			}
		}
	}
	return best
}

// Mean returns the average of h over its entire domain.
func (h *HeightField) Mean() float64 {
	n := float64((h.N + 1) * (h.N + 1))
	return float64(h.Volume()) / n
}

// RowProfile returns a copy of h's r-th row, h(r, 0..N).
func (h *HeightField) RowProfile(r int) []int {
	row := make([]int, len(h.values[r]))
	copy(row, h.values[r])
	return row
}

// ColumnProfile returns h's c-th column, h(0..N, c).
func (h *HeightField) ColumnProfile(c int) []int {
	col := make([]int, h.N+1)
	for r := range col {
		col[r] = h.values[r][c]
	}
	return col
}

// Gradient returns the local gradient field: Dx[r][c] = h(r,c+1)-h(r,c)
// for c in [0,N), shape (N+1)x N; Dy[r][c] = h(r+1,c)-h(r,c) for r in
// [0,N), shape N x (N+1).
func (h *HeightField) Gradient() (dx, dy [][]int) {
	n := h.N
	dx = make([][]int, n+1)
	for r := 0; r <= n; r++ {
		dx[r] = make([]int, n)
		for c := 0; c < n; c++ {
			dx[r][c] = h.values[r][c+1] - h.values[r][c]
		}
	}
	dy = make([][]int, n)
	for r := 0; r < n; r++ {
		dy[r] = make([]int, n+1)
		for c := 0; c <= n; c++ {
			dy[r][c] = h.values[r+1][c] - h.values[r][c]
		}
	}
	return dx, dy
}
