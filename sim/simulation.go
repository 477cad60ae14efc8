// Package sim ties the lattice, flip engine, heat-bath sampler, and
// observables together into the single-writer Simulation façade external
// callers use (spec §5, §6).
package sim

import (
	"context"
	"sync"

	"github.com/katalvlaran/sixvertex/flip"
	"github.com/katalvlaran/sixvertex/heatbath"
	"github.com/katalvlaran/sixvertex/initial"
	"github.com/katalvlaran/sixvertex/lattice"
	"github.com/katalvlaran/sixvertex/observe"
)

// Simulation is a single-writer six-vertex Monte Carlo engine. All
// exported methods are safe to call from multiple goroutines: mu guards
// every field below it, mirroring this corpus's per-concern RWMutex
// convention (one lock protecting one cohesive set of fields, not one
// lock per field). Step and StepBatch take the write lock for their
// entire duration — the engine has no suspension points once a step
// starts, so there is nothing useful to read-lock around. Snapshot and
// Stats take the read lock only long enough to copy out their result.
type Simulation struct {
	mu      sync.RWMutex
	state   *lattice.State
	idx     *flip.Index
	sampler *heatbath.Sampler
	stats   observe.Stats
	cfg     config
}

// New constructs a Simulation from a freshly generated DWBC initial state.
// weights must be all-positive (heatbath.ErrInvalidWeights otherwise);
// size must be >= 2 (initial.ErrInvalidSize otherwise).
func New(size int, weights heatbath.Weights, seed uint64, variant initial.Variant, opts ...Option) (*Simulation, error) {
	cfg := resolve(opts)

	w, err := heatbath.NewWeights(weights)
	if err != nil {
		return nil, err
	}

	var genOpts []initial.Option
	if cfg.skipValidate {
		genOpts = append(genOpts, initial.WithoutValidation())
	}
	state, err := initial.Generate(size, variant, genOpts...)
	if err != nil {
		return nil, err
	}

	idx := flip.NewIndex()
	idx.Rebuild(state)

	return &Simulation{
		state:   state,
		idx:     idx,
		sampler: heatbath.New(w, seed),
		stats:   observe.Stats{Counts: observe.NewCounts(state)},
		cfg:     cfg,
	}, nil
}

// Step performs a single heat-bath update. Returns heatbath.ErrFrozen if
// the lattice has no flippable plaquette.
func (s *Simulation) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked()
}

func (s *Simulation) stepLocked() error {
	res, err := s.sampler.Step(s.state, s.idx)
	if err != nil {
		return err
	}
	s.stats.RecordAttempt()
	if res.Accepted {
		s.stats.RecordAcceptance(res.Before, res.After)
	}
	return nil
}

// StepBatch runs up to k single steps, stopping early without error if the
// lattice freezes mid-batch. Equivalent to StepBatchContext with a
// background context.
func (s *Simulation) StepBatch(k int) error {
	return s.StepBatchContext(context.Background(), k)
}

// StepBatchContext runs up to k single steps, checking ctx for
// cancellation between steps (never mid-flip, per spec §5's cancellation
// rule) and returning ctx.Err() if it fires. A frozen lattice ends the
// batch without error, matching StepBatch.
func (s *Simulation) StepBatchContext(ctx context.Context, k int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < k; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.stepLocked(); err != nil {
			if err == heatbath.ErrFrozen {
				return nil
			}
			return err
		}
	}
	return nil
}

// Snapshot returns an independent copy of the lattice's current state.
func (s *Simulation) Snapshot() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg.snapshotsDisabled {
		return Snapshot{}, ErrSnapshotDenied
	}
	clone := s.state.Clone()
	return Snapshot{
		N:        clone.N,
		Vertices: clone.Vertices,
		HEdges:   clone.HEdges,
		VEdges:   clone.VEdges,
	}, nil
}

// Stats returns a copy of the current acceptance and population
// statistics. FlippableCount is read from the live index under the same
// lock, so it is consistent with the rest of the returned snapshot.
func (s *Simulation) Stats() (observe.Stats, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, s.idx.Len()
}

// ResetStats zeroes the cumulative acceptance counters (see
// observe.Stats.Reset); vertex-type counts are left untouched.
func (s *Simulation) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Reset()
}

// Height returns the height-function reconstruction of the lattice's
// current state.
func (s *Simulation) Height() *observe.HeightField {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return observe.Height(s.state)
}
