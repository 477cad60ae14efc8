package flip

import (
	"testing"

	"github.com/katalvlaran/sixvertex/initial"
)

// TestApply_OutOfRange checks anchors whose footprint falls off the
// lattice are rejected before any catalog lookup.
func TestApply_OutOfRange(t *testing.T) {
	state, err := initial.Generate(4, initial.High)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if err := Apply(state, Anchor{R: 0, C: 0, Dir: Up}); err != ErrOutOfRange {
		t.Errorf("Apply at row-0 up-anchor error = %v; want ErrOutOfRange", err)
	}
}

// TestApply_Involution applies a flip twice at the same anchor and checks
// the lattice returns exactly to its prior state, both in vertex types and
// in the edge arrays — the involution half of Testable Property 3.
func TestApply_Involution(t *testing.T) {
	state, err := initial.Generate(6, initial.High)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	idx := NewIndex()
	idx.Rebuild(state)
	if idx.Len() == 0 {
		t.Fatal("expected at least one flippable anchor on a fresh DWBC-High N=6 lattice")
	}
	anchor := idx.At(0)

	before := state.Clone()

	if err := Apply(state, anchor); err != nil {
		t.Fatalf("first Apply error: %v", err)
	}
	if v := state.CheckIceRule(); v != 0 {
		t.Errorf("after first Apply: %d ice-rule violations; want 0", v)
	}
	if err := Apply(state, anchor); err != nil {
		t.Fatalf("second Apply error: %v", err)
	}
	if v := state.CheckIceRule(); v != 0 {
		t.Errorf("after second Apply: %d ice-rule violations; want 0", v)
	}

	for i := range before.Vertices {
		if state.Vertices[i] != before.Vertices[i] {
			t.Fatalf("vertex %d = %v after double-flip; want %v (original)", i, state.Vertices[i], before.Vertices[i])
		}
	}
	for i := range before.HEdges {
		if state.HEdges[i] != before.HEdges[i] {
			t.Fatalf("HEdges[%d] = %v after double-flip; want %v (original)", i, state.HEdges[i], before.HEdges[i])
		}
	}
	for i := range before.VEdges {
		if state.VEdges[i] != before.VEdges[i] {
			t.Fatalf("VEdges[%d] = %v after double-flip; want %v (original)", i, state.VEdges[i], before.VEdges[i])
		}
	}
}

// TestApply_NotFlippable exercises a known-frozen anchor: the N=2 DWBC-High
// lattice has zero flippable anchors (scenario S4), so any anchor's tuple
// must be rejected.
func TestApply_NotFlippable(t *testing.T) {
	state, err := initial.Generate(2, initial.High)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	idx := NewIndex()
	idx.Rebuild(state)
	if idx.Len() != 0 {
		t.Fatalf("idx.Len() = %d on N=2 DWBC-High; want 0 (frozen)", idx.Len())
	}
	if err := Apply(state, Anchor{R: 1, C: 0, Dir: Up}); err != ErrNotFlippable {
		t.Errorf("Apply on frozen N=2 plaquette error = %v; want ErrNotFlippable", err)
	}
}

// TestIndex_S1_FlippableCount covers S1: a DWBC-High N=6 lattice has
// exactly five flippable anchors, the five up-flip anchors along the
// anti-diagonal.
func TestIndex_S1_FlippableCount(t *testing.T) {
	state, err := initial.Generate(6, initial.High)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	idx := NewIndex()
	idx.Rebuild(state)
	if idx.Len() != 5 {
		t.Errorf("idx.Len() = %d; want 5 (S1)", idx.Len())
	}
	for i := 0; i < idx.Len(); i++ {
		a := idx.At(i)
		if a.Dir != Up {
			t.Errorf("anchor %v is not an up-flip; S1 expects only up-flip anchors", a)
		}
	}
}

// TestIndex_RefreshAfterApply checks that Refresh leaves the index
// consistent with a full Rebuild after a flip is applied.
func TestIndex_RefreshAfterApply(t *testing.T) {
	state, err := initial.Generate(6, initial.High)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	idx := NewIndex()
	idx.Rebuild(state)
	anchor := idx.At(0)

	if err := Apply(state, anchor); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	idx.Refresh(state, anchor.Corners())

	want := NewIndex()
	want.Rebuild(state)

	if idx.Len() != want.Len() {
		t.Fatalf("after Refresh: idx.Len() = %d; want %d (full rebuild)", idx.Len(), want.Len())
	}
	for i := 0; i < want.Len(); i++ {
		if !idx.Contains(want.At(i)) {
			t.Errorf("Refresh missed anchor %v present after full rebuild", want.At(i))
		}
	}
}
