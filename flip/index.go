package flip

import "github.com/katalvlaran/sixvertex/lattice"

// Index is the flippable-site index of spec §3.4: an ordered sequence of
// flippable anchors for uniform random sampling, plus a reverse map from
// anchor to its slot, so membership test, insert, and remove are all O(1).
// Removal uses the swap-with-last trick to avoid shifting the slice.
type Index struct {
	anchors []Anchor
	pos     map[Anchor]int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{pos: make(map[Anchor]int)}
}

// Len returns the number of flippable anchors currently indexed.
func (x *Index) Len() int {
	return len(x.anchors)
}

// At returns the anchor at ordered slot i, for i in [0, Len()). Used by the
// heat-bath sampler to draw a uniform candidate by index.
func (x *Index) At(i int) Anchor {
	return x.anchors[i]
}

// Contains reports whether a is currently indexed as flippable.
func (x *Index) Contains(a Anchor) bool {
	_, ok := x.pos[a]
	return ok
}

func (x *Index) insert(a Anchor) {
	if _, ok := x.pos[a]; ok {
		return
	}
	x.pos[a] = len(x.anchors)
	x.anchors = append(x.anchors, a)
}

func (x *Index) remove(a Anchor) {
	i, ok := x.pos[a]
	if !ok {
		return
	}
	last := len(x.anchors) - 1
	lastAnchor := x.anchors[last]
	x.anchors[i] = lastAnchor
	x.pos[lastAnchor] = i
	x.anchors = x.anchors[:last]
	delete(x.pos, a)
}

// Rebuild discards the current contents and rescans the entire lattice,
// indexing every flippable anchor. Used once, when a Simulation is
// constructed from a freshly generated initial state.
//
// Complexity: O(N^2).
func (x *Index) Rebuild(state *lattice.State) {
	x.anchors = x.anchors[:0]
	x.pos = make(map[Anchor]int)
	for r := 0; r < state.N; r++ {
		for c := 0; c < state.N; c++ {
			for _, dir := range [2]Direction{Up, Down} {
				a := Anchor{R: r, C: c, Dir: dir}
				if a.InBounds(state.N) && IsFlippable(ReadTuple(state, a)) {
					x.insert(a)
				}
			}
		}
	}
}

// Refresh re-evaluates the flippability of every anchor whose plaquette
// touches one of the given vertex coordinates and updates the index
// accordingly (spec §4.3 step 5: "at most 12 neighboring anchors" across
// the four vertices a single flip just changed).
//
// Complexity: O(1) amortized (a bounded number of candidate anchors per
// touched vertex).
func (x *Index) Refresh(state *lattice.State, touched [4][2]int) {
	seen := make(map[Anchor]bool, 12)
	for _, v := range touched {
		for _, a := range candidateAnchors(v[0], v[1]) {
			if seen[a] {
				continue
			}
			seen[a] = true
			if !a.InBounds(state.N) {
				continue
			}
			if IsFlippable(ReadTuple(state, a)) {
				x.insert(a)
			} else {
				x.remove(a)
			}
		}
	}
}

// candidateAnchors returns every anchor (up to eight: four up-flip, four
// down-flip) whose plaquette footprint includes vertex (r,c), derived by
// inverting Anchor.Corners' coordinate formulas. Bounds are not applied
// here; callers filter with Anchor.InBounds.
func candidateAnchors(r, c int) [8]Anchor {
	return [8]Anchor{
		{R: r + 1, C: c, Dir: Up},
		{R: r + 1, C: c - 1, Dir: Up},
		{R: r, C: c - 1, Dir: Up},
		{R: r, C: c, Dir: Up},
		{R: r, C: c + 1, Dir: Down},
		{R: r, C: c, Dir: Down},
		{R: r - 1, C: c, Dir: Down},
		{R: r - 1, C: c + 1, Dir: Down},
	}
}
