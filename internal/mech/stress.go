package mech

// Stress formulas. Moments arrive in kN·m and axial/shear forces in kN;
// section properties are in mm units, so the conversions below produce
// N/mm² directly (1 kN·m = 1e6 N·mm, 1 kN = 1e3 N).

// BendingStress returns the extreme-fiber bending stress σ = M/Z.
func BendingStress(mKNm, zMM3 float64) float64 {
	return mKNm * 1e6 / zMM3
}

// CombinedStress returns the stresses on the two faces of a member under
// axial force N (tension positive) plus bending moment M.
//
//	σ = N/A ± M/Z
//
// max is the algebraically larger face.
func CombinedStress(nKN, aMM2, mKNm, zMM3 float64) (max, min float64) {
	axial := nKN * 1e3 / aMM2
	bending := mKNm * 1e6 / zMM3
	return axial + bending, axial - bending
}

// EccentricStress returns the edge stresses of a short column carrying a
// compressive load N (magnitude, kN) at eccentricity e from the centroid.
// Compression is reported positive here, matching how the eccentric-column
// problems are posed.
//
//	σ = N/A ± N·e/Z
func EccentricStress(nKN, aMM2, eMM, zMM3 float64) (max, min float64) {
	axial := nKN * 1e3 / aMM2
	bending := nKN * 1e3 * eMM / zMM3
	return axial + bending, axial - bending
}

// NoTensionLimit returns the largest eccentricity for which no tension
// occurs anywhere in the section (the kern limit).
//
//	e_max = Z/A
func NoTensionLimit(zMM3, aMM2 float64) float64 {
	return zMM3 / aMM2
}

// ShearMaxRect returns the peak shear stress of a rectangular section
// under shear force Q. The parabolic distribution peaks at mid-depth.
//
//	τ_max = 1.5·Q/A
func ShearMaxRect(qKN, aMM2 float64) float64 {
	return 1.5 * qKN * 1e3 / aMM2
}

// ShearWebH returns the average web shear stress of an H section, with
// the simplification that the web carries the entire shear.
//
//	τ = Q/(t_w·h_w)
func ShearWebH(qKN, twMM, hwMM float64) float64 {
	return qKN * 1e3 / (twMM * hwMM)
}
