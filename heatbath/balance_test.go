package heatbath

import (
	"math"
	"testing"

	"github.com/katalvlaran/sixvertex/flip"
	"github.com/katalvlaran/sixvertex/initial"
)

// TestDetailedBalance_PatternFrequency covers Testable Property 5 (spec.md
// §8): under equal weights, a long run's candidate draws should visit each
// catalogued flippable pattern with relative frequency proportional to how
// often that pattern was actually present in the flippable-site index —
// i.e. the uniform draw Step performs must not systematically favor or
// starve any pattern. For each step, the index's current pattern
// population is tallied (expected weight) before the candidate is drawn,
// and the drawn candidate's own pattern is tallied (observed visits); over
// 10^6 steps the two normalized histograms must agree within a small
// tolerance. Skipped under -short since 10^6 steps is not instantaneous.
func TestDetailedBalance_PatternFrequency(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10^6-step Monte Carlo run in -short mode")
	}

	state, err := initial.Generate(8, initial.High)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	idx := flip.NewIndex()
	idx.Rebuild(state)

	w, err := NewWeights(Weights{A1: 1, A2: 1, B1: 1, B2: 1, C1: 1, C2: 1})
	if err != nil {
		t.Fatalf("NewWeights error: %v", err)
	}
	s := New(w, 42)

	const steps = 1_000_000
	patterns := flip.PatternCount()
	expected := make([]float64, patterns)
	observed := make([]float64, patterns)

	for i := 0; i < steps; i++ {
		for j := 0; j < idx.Len(); j++ {
			id, ok := flip.PatternID(flip.ReadTuple(state, idx.At(j)))
			if !ok {
				t.Fatalf("indexed anchor %v has a non-flippable tuple", idx.At(j))
			}
			expected[id]++
		}

		res, err := s.Step(state, idx)
		if err != nil {
			if err == ErrFrozen {
				break
			}
			t.Fatalf("Step error: %v", err)
		}
		id, ok := flip.PatternID(res.Before)
		if !ok {
			t.Fatalf("Step's candidate %v is not a catalogued pattern", res.Before)
		}
		observed[id]++
	}

	var expectedTotal, observedTotal float64
	for i := 0; i < patterns; i++ {
		expectedTotal += expected[i]
		observedTotal += observed[i]
	}
	if expectedTotal == 0 || observedTotal == 0 {
		t.Fatal("expected nonzero visits and nonzero indexed population across the run")
	}

	const tolerance = 0.02 // absolute frequency slack, well above sqrt(N) noise at 10^6 steps
	for i := 0; i < patterns; i++ {
		expFreq := expected[i] / expectedTotal
		obsFreq := observed[i] / observedTotal
		if math.Abs(expFreq-obsFreq) > tolerance {
			t.Errorf("pattern %d: observed frequency %.4f vs expected %.4f (population-weighted); want within %.2f", i, obsFreq, expFreq, tolerance)
		}
	}
}
