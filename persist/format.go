// Package persist implements the fixed-endian export/import format for a
// Simulation's state (spec §6): magic bytes, version, N, the six Boltzmann
// weights as big-endian IEEE-754 doubles, the PRNG seed, a step counter,
// and N*N vertex-type byte codes. Edge arrays are never persisted — they
// are always rederived from vertex types via lattice.MaterializeEdges, the
// same Open Question resolution the rest of this module follows.
//
// encoding/binary is used rather than a third-party codec: no
// serialization library appears anywhere in the retrieved example corpus,
// and this format is exactly encoding/binary's designed use case — a
// small, fixed-field, fixed-endian dump with no schema evolution to
// support.
package persist

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/sixvertex/heatbath"
	"github.com/katalvlaran/sixvertex/lattice"
	"github.com/katalvlaran/sixvertex/sim"
	"github.com/katalvlaran/sixvertex/vertex"
)

// magic identifies a persist-format stream; version is the only format
// revision this package knows how to read or write.
var magic = [4]byte{'S', 'I', 'X', 'V'}

const version uint8 = 1

// Record is the decoded contents of a persisted stream: a lattice
// snapshot plus the run parameters and progress needed to resume it.
type Record struct {
	Snapshot sim.Snapshot
	Weights  heatbath.Weights
	Seed     uint64
	Steps    uint64
}

// Encode writes snap, weights, seed, and steps to w in the fixed-endian
// layout named in SPEC_FULL.md §6. snap.N must be >= 1 and snap.Vertices must
// hold exactly N*N entries; Encode does not otherwise validate the
// lattice it is given.
func Encode(w io.Writer, snap sim.Snapshot, weights heatbath.Weights, seed uint64, steps uint64) error {
	if len(snap.Vertices) != snap.N*snap.N {
		return ErrSizeMismatch
	}

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, version); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(snap.N)); err != nil {
		return err
	}
	wvals := [6]float64{weights.A1, weights.A2, weights.B1, weights.B2, weights.C1, weights.C2}
	for _, wt := range wvals {
		if err := binary.Write(w, binary.BigEndian, wt); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.BigEndian, seed); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, steps); err != nil {
		return err
	}

	codes := make([]byte, len(snap.Vertices))
	for i, vt := range snap.Vertices {
		codes[i] = byte(vt)
	}
	_, err := w.Write(codes)
	return err
}

// Decode reads a stream written by Encode. The returned Record's Snapshot
// has freshly derived HEdges/VEdges (via lattice.MaterializeEdges), not a
// copy of whatever edges the encoding side happened to hold.
func Decode(r io.Reader) (Record, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return Record{}, err
	}
	if gotMagic != magic {
		return Record{}, ErrBadMagic
	}

	var v uint8
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return Record{}, err
	}
	if v != version {
		return Record{}, ErrUnsupportedVersion
	}

	var n32 uint32
	if err := binary.Read(r, binary.BigEndian, &n32); err != nil {
		return Record{}, err
	}
	n := int(n32)

	var weights heatbath.Weights
	wvals := make([]float64, 6)
	for i := range wvals {
		if err := binary.Read(r, binary.BigEndian, &wvals[i]); err != nil {
			return Record{}, err
		}
	}
	weights.A1, weights.A2, weights.B1, weights.B2, weights.C1, weights.C2 =
		wvals[0], wvals[1], wvals[2], wvals[3], wvals[4], wvals[5]

	var seed, steps uint64
	if err := binary.Read(r, binary.BigEndian, &seed); err != nil {
		return Record{}, err
	}
	if err := binary.Read(r, binary.BigEndian, &steps); err != nil {
		return Record{}, err
	}

	codes := make([]byte, n*n)
	if _, err := io.ReadFull(r, codes); err != nil {
		return Record{}, err
	}

	state, err := lattice.New(n)
	if err != nil {
		return Record{}, err
	}
	for i, code := range codes {
		vt := vertex.VertexType(code)
		if !vt.Valid() {
			return Record{}, ErrInvalidVertexCode
		}
		if err := state.CheckedSetVertexType(i/n, i%n, vt); err != nil {
			return Record{}, err
		}
	}
	state.MaterializeEdges()

	return Record{
		Snapshot: sim.Snapshot{
			N:        n,
			Vertices: state.Vertices,
			HEdges:   state.HEdges,
			VEdges:   state.VEdges,
		},
		Weights: weights,
		Seed:    seed,
		Steps:   steps,
	}, nil
}
