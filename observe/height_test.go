package observe

import (
	"testing"

	"github.com/katalvlaran/sixvertex/initial"
	"github.com/katalvlaran/sixvertex/vertex"
)

// TestHeight_Origin checks h(0,0) = 0 for every reconstruction.
func TestHeight_Origin(t *testing.T) {
	state, err := initial.Generate(6, initial.High)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	h := Height(state)
	if h.At(0, 0) != 0 {
		t.Errorf("h(0,0) = %d; want 0", h.At(0, 0))
	}
}

// TestHeight_S5_RoundTrip covers scenario S5: differencing the
// reconstructed height field recovers the edge tags exactly.
func TestHeight_S5_RoundTrip(t *testing.T) {
	for _, v := range []initial.Variant{initial.High, initial.Low} {
		state, err := initial.Generate(8, v)
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		h := Height(state)

		for r := 0; r <= state.N; r++ {
			for c := 1; c <= state.N; c++ {
				delta := h.At(r, c) - h.At(r, c-1)
				want := state.VEdge(r, c-1)
				got := vertex.Out
				if delta < 0 {
					got = vertex.In
				}
				if got != want {
					t.Errorf("variant %v: VEdge(%d,%d) recovered as %v from delta %d; want %v", v, r, c-1, got, delta, want)
				}
			}
		}
		for r := 1; r <= state.N; r++ {
			for c := 0; c <= state.N; c++ {
				delta := h.At(r, c) - h.At(r-1, c)
				want := state.HEdge(r-1, c)
				got := vertex.Out
				if delta > 0 {
					got = vertex.In
				}
				if got != want {
					t.Errorf("variant %v: HEdge(%d,%d) recovered as %v from delta %d; want %v", v, r-1, c, got, delta, want)
				}
			}
		}
	}
}

func TestHeightField_DerivedMethods(t *testing.T) {
	state, err := initial.Generate(4, initial.High)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	h := Height(state)

	if h.Min() > h.Max() {
		t.Errorf("Min() = %d > Max() = %d", h.Min(), h.Max())
	}
	mean := h.Mean()
	if mean < float64(h.Min()) || mean > float64(h.Max()) {
		t.Errorf("Mean() = %v out of [Min,Max] = [%d,%d]", mean, h.Min(), h.Max())
	}

	row := h.RowProfile(0)
	if len(row) != state.N+1 {
		t.Errorf("len(RowProfile(0)) = %d; want %d", len(row), state.N+1)
	}
	col := h.ColumnProfile(0)
	if len(col) != state.N+1 {
		t.Errorf("len(ColumnProfile(0)) = %d; want %d", len(col), state.N+1)
	}

	dx, dy := h.Gradient()
	for _, row := range dx {
		for _, v := range row {
			if v != 1 && v != -1 {
				t.Errorf("Gradient dx entry = %d; want +-1", v)
			}
		}
	}
	for _, row := range dy {
		for _, v := range row {
			if v != 1 && v != -1 {
				t.Errorf("Gradient dy entry = %d; want +-1", v)
			}
		}
	}
}
