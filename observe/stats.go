package observe

import "github.com/katalvlaran/sixvertex/flip"

// Stats is the acceptance and population bookkeeping a Simulation exposes
// on request (spec §4.5). FlippableCount is deliberately not a field here:
// it is the live size of the flippable-site index, read directly from
// flip.Index by the caller, never cached and never stale.
type Stats struct {
	Attempts        uint64
	SuccessfulFlips uint64
	Counts          Counts
}

// AcceptanceRate returns SuccessfulFlips/Attempts, or 0 if no attempts have
// been recorded since the last Reset.
func (s Stats) AcceptanceRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.SuccessfulFlips) / float64(s.Attempts)
}

// RecordAttempt registers one heat-bath draw, accepted or not.
func (s *Stats) RecordAttempt() {
	s.Attempts++
}

// RecordAcceptance registers one accepted flip and folds its vertex-type
// delta into Counts.
func (s *Stats) RecordAcceptance(before, after flip.Tuple) {
	s.SuccessfulFlips++
	s.Counts.Apply(before, after)
}

// Reset zeroes the cumulative acceptance counters. Counts is left
// untouched: it reflects the lattice's current population, which Reset
// does not mutate (spec §4.5: "cumulative since the last reset" applies
// only to the acceptance ratio, not to the lattice itself).
func (s *Stats) Reset() {
	s.Attempts = 0
	s.SuccessfulFlips = 0
}
