// Command sixvertex-bench runs a fixed six-vertex Monte Carlo scenario and
// prints its acceptance statistics and height-field summary.
//
// Scenario:
//
//	N=16 DWBC-High lattice, equal Boltzmann weights, seed=1, 200000 steps.
//
// Expected output:
//   - Final acceptance rate and successful-flip count.
//   - Per-type vertex histogram.
//   - Height-field min/max/mean.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/sixvertex/heatbath"
	"github.com/katalvlaran/sixvertex/initial"
	"github.com/katalvlaran/sixvertex/sim"
	"github.com/katalvlaran/sixvertex/vertex"
)

const (
	latticeSize = 16
	seed        = 1
	steps       = 200_000
)

func main() {
	weights := heatbath.Weights{A1: 1, A2: 1, B1: 1, B2: 1, C1: 1, C2: 1}

	s, err := sim.New(latticeSize, weights, seed, initial.High)
	if err != nil {
		log.Fatalf("sim.New: %v", err)
	}

	if err := s.StepBatch(steps); err != nil {
		log.Fatalf("StepBatch: %v", err)
	}

	stats, flippable := s.Stats()
	fmt.Printf("attempts=%d successful_flips=%d acceptance_rate=%.4f flippable_count=%d\n",
		stats.Attempts, stats.SuccessfulFlips, stats.AcceptanceRate(), flippable)

	hist := stats.Counts.Histogram()
	for _, vt := range vertex.AllVertexTypes() {
		fmt.Printf("  %s: %.4f\n", vt, hist[vt])
	}

	h := s.Height()
	fmt.Printf("height: min=%d max=%d mean=%.4f volume=%d\n",
		h.Min(), h.Max(), h.Mean(), h.Volume())
}
