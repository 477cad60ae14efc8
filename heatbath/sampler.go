package heatbath

import (
	"github.com/katalvlaran/sixvertex/flip"
	"github.com/katalvlaran/sixvertex/lattice"
	"github.com/katalvlaran/sixvertex/prng"
)

// Sampler runs the heat-bath Monte Carlo update over a lattice and its
// flippable-site index. It owns no snapshot of its own; callers (package
// sim) are responsible for lattice/index lifetime and for exposing
// read-only views to observers.
type Sampler struct {
	weights Weights
	rng     *prng.SplitMix64
}

// New returns a Sampler drawing from a SplitMix64 stream seeded with seed.
func New(weights Weights, seed uint64) *Sampler {
	return &Sampler{weights: weights, rng: prng.New(seed)}
}

// Result reports the outcome of one Step: the candidate tuple read before
// the draw, and the tuple it would become (its catalogued counterpart).
// Before/After are only meaningful together with Accepted — on rejection
// the lattice still holds Before, not After.
type Result struct {
	Accepted bool
	Before   flip.Tuple
	After    flip.Tuple
}

// Step performs one heat-bath update (spec §4.4 "Single step"):
//  1. If idx is empty, return ErrFrozen.
//  2. Uniformly sample a candidate anchor from idx.
//  3. Compute W_current and W_proposed from the candidate's catalogued
//     counterpart.
//  4. Draw u from the PRNG (after the candidate is chosen, never before,
//     so reproducibility is anchor-stable) and accept iff
//     u < W_proposed/(W_current+W_proposed).
//  5. On acceptance, apply the flip, rescan the touched anchors, and
//     report accepted=true; always report attempted regardless of outcome.
//
// Complexity: O(1) amortized.
func (s *Sampler) Step(state *lattice.State, idx *flip.Index) (Result, error) {
	n := idx.Len()
	if n == 0 {
		return Result{}, ErrFrozen
	}

	slot := int(s.rng.Uint64() % uint64(n))
	anchor := idx.At(slot)

	current := flip.ReadTuple(state, anchor)
	proposed, ok := flip.Counterpart(current)
	if !ok {
		// The index only ever holds catalogued anchors; this would be a
		// bug in Index bookkeeping, not a runtime condition to recover from.
		return Result{}, flip.ErrNotFlippable
	}

	wCurrent := s.weights.product(current)
	wProposed := s.weights.product(proposed)

	u := s.rng.Float64()
	if u >= wProposed/(wCurrent+wProposed) {
		return Result{Before: current}, nil
	}

	if err := flip.Apply(state, anchor); err != nil {
		return Result{}, err
	}
	idx.Refresh(state, anchor.Corners())
	return Result{Accepted: true, Before: current, After: proposed}, nil
}

// StepBatch runs up to k single steps, stopping early if the lattice
// freezes mid-batch and returning the attempt/acceptance
// counts accumulated so far plus ErrFrozen, so callers can distinguish a
// full batch from a batch truncated by freezing. Per spec §4.4, the
// externally observable state after a batch must equal that of k
// sequential single steps under the same PRNG stream — StepBatch performs
// exactly that sequence, only folding the bookkeeping into one call.
func (s *Sampler) StepBatch(state *lattice.State, idx *flip.Index, k int) (attempts, accepted int, err error) {
	for i := 0; i < k; i++ {
		res, stepErr := s.Step(state, idx)
		if stepErr != nil {
			return attempts, accepted, stepErr
		}
		attempts++
		if res.Accepted {
			accepted++
		}
	}
	return attempts, accepted, nil
}
