package vertex

// configTable is the total, design-time bijection between VertexType and
// Config (the table in spec §3.1). Index by VertexType.
var configTable = [numVertexTypes]Config{
	A1: {Left: In, Right: Out, Top: In, Bottom: Out},
	A2: {Left: Out, Right: In, Top: Out, Bottom: In},
	B1: {Left: In, Right: In, Top: Out, Bottom: Out},
	B2: {Left: Out, Right: Out, Top: In, Bottom: In},
	C1: {Left: In, Right: Out, Top: Out, Bottom: In},
	C2: {Left: Out, Right: In, Top: In, Bottom: Out},
}

// ConfigOf returns the four-edge configuration of t. Total over VertexType;
// callers must not pass an out-of-range value.
//
// Complexity: O(1).
func ConfigOf(t VertexType) Config {
	return configTable[t]
}

// TypeOf returns the vertex type matching cfg, or ErrInvalidConfiguration
// if cfg is not one of the six admissible configurations (e.g. three IN and
// one OUT, which violates the ice rule).
//
// Complexity: O(1) — linear scan of a fixed six-element table.
func TypeOf(cfg Config) (VertexType, error) {
	for i := 0; i < numVertexTypes; i++ {
		if configTable[i] == cfg {
			return VertexType(i), nil
		}
	}
	return 0, ErrInvalidConfiguration
}

// HeightContribution returns the per-type local height-gradient
// decomposition used by the height function (spec §4.1, §4.5): fromLeft is
// 1 when t's local left edge is OUT (the edge flows out of the vertex
// toward its left neighbor, per the global horizontal convention where OUT
// is the right-to-left tag); fromTop is 1 when t's local top edge is IN (flows
// into the vertex from above, per the global vertical convention where IN
// is the top-to-bottom tag). Both are otherwise 0.
//
// Complexity: O(1).
func HeightContribution(t VertexType) (fromLeft, fromTop int) {
	cfg := ConfigOf(t)
	if cfg.Left == Out {
		fromLeft = 1
	}
	if cfg.Top == In {
		fromTop = 1
	}
	return fromLeft, fromTop
}
