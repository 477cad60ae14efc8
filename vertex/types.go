// Package vertex defines the six admissible six-vertex-model vertex types,
// their canonical edge configurations, and the small set of pure helper
// predicates derived from the ice rule.
//
// The six types form a closed tagged variant: there is no seventh type and
// no virtual dispatch is needed anywhere in this package — every operation
// is a total or partial function over a six-element enum.
package vertex

import "fmt"

// VertexType identifies one of the six ice-rule-admissible vertex
// configurations. The numeric values match the persisted-state vertex
// codes used by the persist package (a1=0, a2=1, b1=2, b2=3, c1=4, c2=5).
type VertexType uint8

const (
	A1 VertexType = iota
	A2
	B1
	B2
	C1
	C2
)

// numVertexTypes is the size of the closed VertexType variant.
const numVertexTypes = 6

// names holds the canonical lowercase names in table order, indexed by VertexType.
var names = [numVertexTypes]string{"a1", "a2", "b1", "b2", "c1", "c2"}

// String returns the canonical lowercase name ("a1".."c2"), or a diagnostic
// placeholder for an out-of-range value.
func (t VertexType) String() string {
	if int(t) >= numVertexTypes {
		return fmt.Sprintf("vertex.VertexType(%d)", uint8(t))
	}
	return names[t]
}

// Valid reports whether t is one of the six admissible types.
func (t VertexType) Valid() bool {
	return int(t) < numVertexTypes
}

// AllVertexTypes returns the six vertex types in table order (a1, a2, b1,
// b2, c1, c2). Callers may freely mutate the returned slice.
func AllVertexTypes() []VertexType {
	return []VertexType{A1, A2, B1, B2, C1, C2}
}

// EdgeTag is the two-valued orientation tag carried by one incident edge,
// interpreted from a vertex's local perspective (see ConfigOf) or, for a
// lattice edge array, from the global horizontal/vertical convention
// documented on the lattice package.
type EdgeTag uint8

const (
	// In marks an edge flowing into the vertex (local) or, globally,
	// left-to-right (horizontal) / top-to-bottom (vertical).
	In EdgeTag = iota
	// Out marks an edge flowing out of the vertex (local) or, globally,
	// right-to-left (horizontal) / bottom-to-top (vertical).
	Out
)

// Invert returns the opposite tag.
func (e EdgeTag) Invert() EdgeTag {
	if e == In {
		return Out
	}
	return In
}

func (e EdgeTag) String() string {
	if e == In {
		return "in"
	}
	return "out"
}

// Config is the four-edge local configuration of a vertex: the IN/OUT tag
// of each of its incident edges, from that vertex's own perspective.
type Config struct {
	Left, Right, Top, Bottom EdgeTag
}
