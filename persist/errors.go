package persist

import "errors"

// Sentinel errors for the fixed-endian snapshot format.
var (
	// ErrBadMagic indicates the stream does not begin with the expected
	// magic bytes, i.e. it is not a persist-format stream at all.
	ErrBadMagic = errors.New("persist: bad magic bytes")

	// ErrUnsupportedVersion indicates a version byte this decoder does not
	// know how to read.
	ErrUnsupportedVersion = errors.New("persist: unsupported format version")

	// ErrSizeMismatch indicates the vertex payload length does not match
	// the header's declared N.
	ErrSizeMismatch = errors.New("persist: vertex payload length does not match N*N")

	// ErrInvalidVertexCode indicates a decoded vertex byte is not one of
	// the six admissible type codes (0..5).
	ErrInvalidVertexCode = errors.New("persist: invalid vertex type code")
)
