package initial

import "github.com/katalvlaran/sixvertex/lattice"

// Generate builds the DWBC ground state of the given variant on a fresh
// N×N lattice: it fills Vertices in a single row-major pass from the pure
// per-coordinate rule (dwbcHighType or dwbcLowType), materializes the edge
// arrays from that vertex pattern, and — unless WithoutValidation is
// given — verifies the result is ice-rule consistent everywhere.
//
// Complexity: O(N^2).
func Generate(n int, variant Variant, opts ...Option) (*lattice.State, error) {
	if n < 2 {
		return nil, ErrInvalidSize
	}
	if !variant.valid() {
		return nil, ErrUnknownVariant
	}
	cfg := resolve(opts)

	s, err := lattice.New(n)
	if err != nil {
		return nil, err
	}

	typeFn := dwbcHighType
	if variant == Low {
		typeFn = dwbcLowType
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			s.SetVertexType(r, c, typeFn(r, c, n))
		}
	}
	s.MaterializeEdges()

	if !cfg.skipValidate {
		if v := s.CheckIceRule(); v != 0 {
			return nil, ErrInvalidInitialState
		}
	}
	return s, nil
}
