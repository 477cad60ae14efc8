// Package heatbath implements the symmetric heat-bath Monte Carlo update
// (spec §4.4): six per-vertex-type Boltzmann weights, a single step that
// samples a candidate flip from the flippable-site index and accepts it
// with probability W_proposed/(W_current+W_proposed), and batched sweeps.
package heatbath

import (
	"math"

	"github.com/katalvlaran/sixvertex/flip"
	"github.com/katalvlaran/sixvertex/vertex"
)

// Weights holds the six positive Boltzmann weights that parameterize the
// model's stationary distribution (spec §4.4).
type Weights struct {
	A1, A2, B1, B2, C1, C2 float64
}

// NewWeights validates w and returns it unchanged, or ErrInvalidWeights if
// any component is non-positive, NaN, or infinite. Validation runs once
// here rather than on every weight lookup, matching this corpus's
// validate-once-callees-stay-light posture for per-step hot paths.
func NewWeights(w Weights) (Weights, error) {
	for _, v := range w.values() {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Weights{}, ErrInvalidWeights
		}
	}
	return w, nil
}

func (w Weights) values() [6]float64 {
	return [6]float64{w.A1, w.A2, w.B1, w.B2, w.C1, w.C2}
}

// of returns the weight of a single vertex type.
func (w Weights) of(t vertex.VertexType) float64 {
	switch t {
	case vertex.A1:
		return w.A1
	case vertex.A2:
		return w.A2
	case vertex.B1:
		return w.B1
	case vertex.B2:
		return w.B2
	case vertex.C1:
		return w.C1
	default:
		return w.C2
	}
}

// product returns the product of w.of(t) over all four corners of a tuple.
func (w Weights) product(t flip.Tuple) float64 {
	p := 1.0
	for _, vt := range t {
		p *= w.of(vt)
	}
	return p
}
