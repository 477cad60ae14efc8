package initial

import "github.com/katalvlaran/sixvertex/vertex"

// dwbcHighType returns the DWBC-High vertex type at (r,c) for an N×N
// lattice: c2 on the anti-diagonal, b1 above it, b2 below it (spec §4.2).
func dwbcHighType(r, c, n int) vertex.VertexType {
	switch {
	case r+c == n-1:
		return vertex.C2
	case r+c < n-1:
		return vertex.B1
	default:
		return vertex.B2
	}
}

// dwbcLowType returns the DWBC-Low vertex type at (r,c) for an N×N lattice:
// c2 on the main diagonal, a1 above it, a2 below it (spec §4.2).
func dwbcLowType(r, c, n int) vertex.VertexType {
	switch {
	case r == c:
		return vertex.C2
	case c > r:
		return vertex.A1
	default:
		return vertex.A2
	}
}
