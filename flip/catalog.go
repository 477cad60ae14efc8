package flip

import (
	"sort"

	"github.com/katalvlaran/sixvertex/vertex"
)

// Tuple is a plaquette's four corner vertex types, in NW, NE, SE, SW order.
type Tuple [4]vertex.VertexType

// signature is the eight edge tags exterior to a plaquette (the two tags on
// each corner that connect outward, to vertices outside the plaquette),
// again in NW, NE, SE, SW corner order. Two consistent tuples with the same
// signature differ only in their four interior edges — exactly the
// relationship a flip must preserve.
type signature [8]vertex.EdgeTag

// catalog maps every flippable tuple to its unique counterpart: the result
// of reversing the plaquette's interior edges. Built once at package init
// by brute-force enumeration (spec §9's open question), never hand-
// transcribed.
var catalog map[Tuple]Tuple

// patternIndex maps every flippable tuple to the index (0..9) of the
// catalogued pattern it and its counterpart both belong to — the unit
// Testable Property 5 (spec.md §8) measures visitation frequency over.
// Indices are assigned by sorting each pair's lexicographically smaller
// member, so the mapping is deterministic across runs despite catalog
// itself being built from Go map iteration.
var patternIndex map[Tuple]int

func init() {
	catalog = deriveCatalog()
	patternIndex = derivePatternIndex(catalog)
}

// derivePatternIndex assigns a stable 0..9 index to each of the catalog's
// ten tuple pairs.
func derivePatternIndex(catalog map[Tuple]Tuple) map[Tuple]int {
	repSet := make(map[Tuple]Tuple)
	for t, counterpart := range catalog {
		rep, other := t, counterpart
		if tupleLess(counterpart, t) {
			rep, other = counterpart, t
		}
		repSet[rep] = other
	}

	reps := make([]Tuple, 0, len(repSet))
	for rep := range repSet {
		reps = append(reps, rep)
	}
	sort.Slice(reps, func(i, j int) bool { return tupleLess(reps[i], reps[j]) })

	index := make(map[Tuple]int, len(catalog))
	for id, rep := range reps {
		index[rep] = id
		index[repSet[rep]] = id
	}
	return index
}

// tupleLess gives Tuple a total order for deterministic sorting.
func tupleLess(a, b Tuple) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// PatternID returns the stable 0..9 index of t's catalogued pattern (the
// same index for t and Counterpart(t)), or false if t is not flippable.
func PatternID(t Tuple) (int, bool) {
	id, ok := patternIndex[t]
	return id, ok
}

// PatternCount returns the number of distinct catalogued patterns — ten,
// matching PairCount.
func PatternCount() int {
	return PairCount()
}

// deriveCatalog enumerates all 6^4 = 1296 corner tuples, keeps those whose
// four corners agree on the edges they share (the "ice rule across shared
// edges" condition — each corner type is already individually ice-rule
// valid by construction, so what remains to check is that adjacent corners
// agree on the edge between them), groups the survivors by their exterior
// signature, and pairs up every group of exactly two as mutual flip
// counterparts. A consistent tuple whose signature is unique among
// survivors is a frozen (non-flippable) pattern and is dropped.
func deriveCatalog() map[Tuple]Tuple {
	groups := make(map[signature][]Tuple)

	all := vertex.AllVertexTypes()
	for _, nw := range all {
		for _, ne := range all {
			for _, se := range all {
				for _, sw := range all {
					t := Tuple{nw, ne, se, sw}
					cfgs := [4]vertex.Config{
						vertex.ConfigOf(nw),
						vertex.ConfigOf(ne),
						vertex.ConfigOf(se),
						vertex.ConfigOf(sw),
					}
					if !sharedEdgesConsistent(cfgs) {
						continue
					}
					sig := signatureOf(cfgs)
					groups[sig] = append(groups[sig], t)
				}
			}
		}
	}

	result := make(map[Tuple]Tuple)
	for _, tuples := range groups {
		if len(tuples) != 2 {
			continue
		}
		result[tuples[0]] = tuples[1]
		result[tuples[1]] = tuples[0]
	}
	return result
}

// sharedEdgesConsistent reports whether the NW/NE pair agrees on their
// shared horizontal edge, the SW/SE pair on theirs, the NW/SW pair on their
// shared vertical edge, and the NE/SE pair on theirs. A corner's Right (or
// Bottom) local tag is the global edge tag inverted; its neighbor's Left
// (or Top) local tag is the global tag directly — see lattice.ConfigAt.
func sharedEdgesConsistent(cfgs [4]vertex.Config) bool {
	nw, ne, se, sw := cfgs[0], cfgs[1], cfgs[2], cfgs[3]
	return nw.Right.Invert() == ne.Left &&
		sw.Right.Invert() == se.Left &&
		nw.Bottom.Invert() == sw.Top &&
		ne.Bottom.Invert() == se.Top
}

// signatureOf extracts the eight edge tags exterior to the plaquette.
func signatureOf(cfgs [4]vertex.Config) signature {
	nw, ne, se, sw := cfgs[0], cfgs[1], cfgs[2], cfgs[3]
	return signature{
		nw.Left, nw.Top,
		ne.Right, ne.Top,
		se.Right, se.Bottom,
		sw.Left, sw.Bottom,
	}
}

// Counterpart returns t's flip partner and true if t is flippable.
func Counterpart(t Tuple) (Tuple, bool) {
	c, ok := catalog[t]
	return c, ok
}

// IsFlippable reports whether t matches a catalogued pattern.
func IsFlippable(t Tuple) bool {
	_, ok := catalog[t]
	return ok
}

// PairCount returns the number of distinct flippable (tuple, counterpart)
// pairs in the catalog — ten, per spec §4.3.
func PairCount() int {
	return len(catalog) / 2
}
