package sim

import "github.com/katalvlaran/sixvertex/vertex"

// Snapshot is an immutable, independent copy of a lattice's state at the
// moment Snapshot was called (spec §5: "a copy of the vertex array and
// statistics"). A Simulation never mutates a Snapshot after returning it.
type Snapshot struct {
	N        int
	Vertices []vertex.VertexType
	HEdges   []vertex.EdgeTag
	VEdges   []vertex.EdgeTag
}
