package observe

import (
	"testing"

	"github.com/katalvlaran/sixvertex/flip"
	"github.com/katalvlaran/sixvertex/initial"
	"github.com/katalvlaran/sixvertex/vertex"
)

func TestNewCounts_SumsToTotal(t *testing.T) {
	state, err := initial.Generate(6, initial.Low)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	c := NewCounts(state)
	sum := 0
	for _, vt := range vertex.AllVertexTypes() {
		sum += c.Count(vt)
	}
	if sum != 36 {
		t.Errorf("sum of counts = %d; want 36", sum)
	}
}

func TestCounts_Apply(t *testing.T) {
	state, err := initial.Generate(6, initial.High)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	c := NewCounts(state)
	b1Before, c1Before := c.Count(vertex.B1), c.Count(vertex.C1)

	before := flip.Tuple{vertex.B1, vertex.B1, vertex.B2, vertex.B1}
	after := flip.Tuple{vertex.C1, vertex.C2, vertex.C1, vertex.C2}
	c.Apply(before, after)

	if c.Count(vertex.B1) != b1Before-3 {
		t.Errorf("B1 count not decremented by 3")
	}
	if c.Count(vertex.C1) != c1Before+2 {
		t.Errorf("C1 count not incremented by 2")
	}
}

func TestStats_AcceptanceRate(t *testing.T) {
	var s Stats
	if s.AcceptanceRate() != 0 {
		t.Errorf("AcceptanceRate() on zero value = %v; want 0", s.AcceptanceRate())
	}
	s.RecordAttempt()
	s.RecordAttempt()
	s.RecordAcceptance(flip.Tuple{}, flip.Tuple{})
	if s.AcceptanceRate() != 0.5 {
		t.Errorf("AcceptanceRate() = %v; want 0.5", s.AcceptanceRate())
	}
	s.Reset()
	if s.Attempts != 0 || s.SuccessfulFlips != 0 {
		t.Errorf("Reset() did not zero counters")
	}
}
