package mech

// Three-hinge portal frame: pin supports at both column bases and a hinge
// at the beam midspan. Span l, column height h.

// PortalCentralLoad returns the horizontal reaction and the column-head
// moment for a concentrated load P at the beam midspan.
//
//	H = P·L/(4h)   M = H·h = P·L/4
func PortalCentralLoad(p, l, h float64) (hReaction, m float64) {
	hReaction = p * l / (4 * h)
	return hReaction, hReaction * h
}

// PortalUDL returns the column-head moment for a full-span uniform load
// on the beam.
//
//	M = w·L²/8
func PortalUDL(w, l float64) float64 {
	return w * l * l / 8
}

// PortalLateralLoad returns the horizontal reactions and the column-head
// moment for a horizontal load P applied at a column head. The midspan
// hinge forces the two bases to share the load equally.
//
//	H_A = H_B = P/2   M = P·h/2
func PortalLateralLoad(p, h float64) (hReaction, m float64) {
	return p / 2, p * h / 2
}
