package mech

// Elastic deflection of the two textbook cases used by the ratio
// problems:
//
//	simple beam, central load:  δ = P·L³/(48·E·I)
//	cantilever, tip load:       δ = P·L³/(3·E·I)
//
// The generators only ever ask for ratios, so E·I is carried as a single
// relative stiffness factor.

// DeflectionCoefficient returns the k in δ = P·L³/(k·E·I).
func DeflectionCoefficient(cantilever bool) float64 {
	if cantilever {
		return 3
	}
	return 48
}

// DeflectionRatio returns δ2/δ1 for two beams of the same support type,
// given the load, span and stiffness of beam 2 relative to beam 1.
//
//	δ ∝ P·L³/(E·I)
func DeflectionRatio(loadRatio, spanRatio, stiffnessRatio float64) float64 {
	return loadRatio * spanRatio * spanRatio * spanRatio / stiffnessRatio
}

// CantileverToSimpleRatio returns δ_cantilever/δ_simple for the same P, L
// and EI: (1/3)/(1/48) = 16.
func CantileverToSimpleRatio() float64 {
	return 16
}
