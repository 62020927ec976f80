package mech

import "math"

// Truss member forces, tension positive.
//
// Each family is a fixed geometry resolved once by the method of joints or
// the method of sections; the per-member results below are the closed
// forms for that geometry with a single applied load P.

// TriangleLowerChord returns the lower-chord force of the symmetric
// triangular truss (apex load P, 45° rafters). The chord ties the two
// supports together and is always in tension.
//
//	N = P/2
func TriangleLowerChord(p float64) float64 {
	return p / 2
}

// TriangleRafter returns the rafter force of the same triangular truss.
// Both rafters carry equal compression. The value is irrational, so it is
// never a problem target, only a distractor source.
//
//	N = −P/√2
func TriangleRafter(p float64) float64 {
	return -p / math.Sqrt2
}

// CantileverTrussDiagonal returns the diagonal force at the loaded tip of
// a cantilever truss with 4 m panels and 3 m height (3-4-5 proportions).
// The diagonal hangs the tip load back to the wall and is in tension.
//
//	N = 5P/3
func CantileverTrussDiagonal(p float64) float64 {
	return 5 * p / 3
}

// CantileverTrussChord returns the chord force at the loaded tip of the
// same cantilever truss. The chord is pushed against the wall, so it is
// in compression.
//
//	N = −4P/3
func CantileverTrussChord(p float64) float64 {
	return -4 * p / 3
}

// PrattDiagonal returns the force in the first interior diagonal of the
// standard Pratt truss under a central load P (3-4-5 panel proportions).
// Pratt diagonals work in tension.
//
//	N = 5P/6
func PrattDiagonal(p float64) float64 {
	return 5 * p / 6
}

// PrattVertical returns the force in the vertical adjacent to that
// diagonal. Pratt verticals work in compression.
//
//	N = −P/2
func PrattVertical(p float64) float64 {
	return -p / 2
}
