// Package mech implements the closed-form statics and strength-of-materials
// formulas the problem generators are built on. Every function is pure.
//
// Unit conventions throughout the package:
//   - spans and positions in meters
//   - concentrated loads in kN, distributed loads in kN/m
//   - moments in kN·m
//   - section dimensions in mm, areas in mm², Z in mm³, I in mm⁴
//   - stresses in N/mm²
//
// Axial forces follow the tension-positive convention: a positive member
// force means tension, negative means compression.
package mech

// SimpleBeamConcentrated returns the support reactions and the maximum
// bending moment for a simply supported beam of span l carrying a
// concentrated load p at distance a from the left support.
//
//	Va = P·b/L   Vb = P·a/L   Mmax = P·a·b/L (under the load)
func SimpleBeamConcentrated(p, l, a float64) (va, vb, mmax float64) {
	b := l - a
	va = p * b / l
	vb = p * a / l
	mmax = p * a * b / l
	return va, vb, mmax
}

// SimpleBeamUDL returns the (equal) support reactions and the midspan
// moment for a simply supported beam under a full-span uniform load w.
//
//	V = w·L/2   Mmax = w·L²/8
func SimpleBeamUDL(w, l float64) (v, mmax float64) {
	return w * l / 2, w * l * l / 8
}

// SimpleBeamUDLAt returns the bending moment and the shear force at
// position x (from the left support) for a simply supported beam under a
// full-span uniform load.
//
//	M(x) = w·x·(L−x)/2   Q(x) = w·L/2 − w·x
func SimpleBeamUDLAt(w, l, x float64) (m, q float64) {
	return w * x * (l - x) / 2, w*l/2 - w*x
}

// CantileverConcentrated returns the fixed-end moment magnitude and the
// fixed-end reaction for a cantilever with a concentrated load p at
// distance a from the fixed end.
func CantileverConcentrated(p, a float64) (m, v float64) {
	return p * a, p
}

// CantileverUDL returns the fixed-end moment magnitude and the fixed-end
// reaction for a cantilever of length l under a uniform load w.
//
//	M = w·L²/2   V = w·L
func CantileverUDL(w, l float64) (m, v float64) {
	return w * l * l / 2, w * l
}

// OverhangLoadOnOverhang returns the reactions and the moment over support
// B for a beam on supports A and B (span l) with a concentrated load p at
// the tip of an overhang of length c beyond B. Va acts downward (uplift on
// the support) and is returned as the reaction magnitude the left support
// must resist.
//
//	Va = P·c/L   Vb = P·(L+c)/L   Mb = P·c
func OverhangLoadOnOverhang(p, l, c float64) (va, vb, mb float64) {
	return p * c / l, p * (l + c) / l, p * c
}
