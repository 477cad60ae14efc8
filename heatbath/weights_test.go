package heatbath

import (
	"math"
	"testing"

	"github.com/katalvlaran/sixvertex/vertex"
)

func TestNewWeights_Valid(t *testing.T) {
	w, err := NewWeights(Weights{A1: 1, A2: 1, B1: 1, B2: 1, C1: 1, C2: 1})
	if err != nil {
		t.Fatalf("NewWeights error: %v", err)
	}
	if w.of(vertex.A1) != 1 {
		t.Errorf("w.of(A1) = %v; want 1", w.of(vertex.A1))
	}
}

func TestNewWeights_RejectsNonPositive(t *testing.T) {
	cases := []Weights{
		{A1: 0, A2: 1, B1: 1, B2: 1, C1: 1, C2: 1},
		{A1: -1, A2: 1, B1: 1, B2: 1, C1: 1, C2: 1},
		{A1: math.NaN(), A2: 1, B1: 1, B2: 1, C1: 1, C2: 1},
		{A1: math.Inf(1), A2: 1, B1: 1, B2: 1, C1: 1, C2: 1},
	}
	for _, w := range cases {
		if _, err := NewWeights(w); err != ErrInvalidWeights {
			t.Errorf("NewWeights(%+v) error = %v; want ErrInvalidWeights", w, err)
		}
	}
}

func TestWeights_Of_AllTypes(t *testing.T) {
	w := Weights{A1: 1, A2: 2, B1: 3, B2: 4, C1: 5, C2: 6}
	cases := []struct {
		vt   vertex.VertexType
		want float64
	}{
		{vertex.A1, 1}, {vertex.A2, 2}, {vertex.B1, 3},
		{vertex.B2, 4}, {vertex.C1, 5}, {vertex.C2, 6},
	}
	for _, tc := range cases {
		if got := w.of(tc.vt); got != tc.want {
			t.Errorf("w.of(%v) = %v; want %v", tc.vt, got, tc.want)
		}
	}
}
