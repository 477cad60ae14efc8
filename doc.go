// Package sixvertex is a Monte Carlo simulator for the two-dimensional
// six-vertex (square-ice) model on a finite square lattice with
// Domain-Wall Boundary Conditions (DWBC).
//
// 🧊 What is sixvertex?
//
//	A small, composable, thread-safe library that brings together:
//
//	  • vertex    — the six vertex types and the ice-rule algebra
//	  • lattice   — the N×N vertex/edge state and its invariants
//	  • initial   — deterministic DWBC-High / DWBC-Low builders
//	  • flip      — the flippable-plaquette catalog and update engine
//	  • prng      — a seeded, splittable, reproducible 64-bit generator
//	  • heatbath  — the heat-bath Monte Carlo update and batched sweeps
//	  • observe   — acceptance statistics and the height-function field
//	  • sim       — the single-writer Simulation façade tying it together
//	  • persist   — the fixed-endian snapshot export/import format
//
// ✨ Why sixvertex?
//
//   - Deterministic    — identical (size, variant, weights, seed, steps)
//     always produces bit-identical lattices and statistics.
//   - Thread-safe      — a running Simulation publishes read-only
//     snapshots under R/W locks; observers never see a torn flip.
//   - Pure Go          — no cgo, the only external dependency is
//     testify, used at the test boundary only.
//
// Under the hood, each concern above lives in its own subpackage:
//
//	vertex/    — vertex-type algebra, configurations, height contribution
//	lattice/   — packed vertex/edge arrays and their invariants
//	initial/   — DWBC-High / DWBC-Low generators
//	flip/      — the ten up-flip / ten down-flip patterns and the index
//	prng/      — SplitMix64
//	heatbath/  — weight evaluation and the heat-bath accept/reject rule
//	observe/   — vertex-type counts, acceptance rate, height function
//	sim/       — Simulation: New, Step, StepBatch, Snapshot, Stats
//	persist/   — Encode/Decode of the fixed-endian snapshot format
//
// Quick usage:
//
//	s, err := sim.New(8, heatbath.Weights{A1: 1, A2: 1, B1: 1, B2: 1, C1: 1, C2: 1}, 42, initial.High)
//	if err != nil { ... }
//	if err := s.StepBatch(5000); err != nil { ... }
//	stats, flippableCount := s.Stats()
//	fmt.Println(stats.AcceptanceRate(), flippableCount)
//
// See DESIGN.md for the grounding of every package in this corpus.
//
//	go get github.com/katalvlaran/sixvertex
package sixvertex
