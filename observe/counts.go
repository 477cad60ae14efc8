// Package observe exposes the measured quantities a running simulation
// publishes to outside consumers: per-type vertex counts, acceptance
// statistics, and the height-function reconstruction (spec §4.5).
package observe

import (
	"github.com/katalvlaran/sixvertex/flip"
	"github.com/katalvlaran/sixvertex/lattice"
	"github.com/katalvlaran/sixvertex/vertex"
)

// Counts is the per-vertex-type population of a lattice, maintained
// incrementally on every accepted flip rather than recomputed by a full
// rescan.
type Counts struct {
	total  int
	counts [6]int
}

// NewCounts performs a full O(N^2) scan to seed Counts for a freshly built
// lattice; afterward callers update it incrementally via Apply.
func NewCounts(state *lattice.State) Counts {
	c := Counts{total: len(state.Vertices)}
	for _, vt := range state.Vertices {
		c.counts[vt]++
	}
	return c
}

// Apply updates the histogram for a flip that replaced the four vertex
// types in before with the four in after (the tuples flip.Apply consumes
// and produces).
//
// Complexity: O(1).
func (c *Counts) Apply(before, after flip.Tuple) {
	for _, vt := range before {
		c.counts[vt]--
	}
	for _, vt := range after {
		c.counts[vt]++
	}
}

// Count returns the current number of vertices of type t.
func (c Counts) Count(t vertex.VertexType) int {
	return c.counts[t]
}

// Histogram returns the six type counts normalized by N*N.
func (c Counts) Histogram() [6]float64 {
	var h [6]float64
	if c.total == 0 {
		return h
	}
	for i, n := range c.counts {
		h[i] = float64(n) / float64(c.total)
	}
	return h
}
