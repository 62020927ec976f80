package mech

// Cross-section properties. Dimensions in mm, areas in mm², section
// moduli in mm³, moments of inertia in mm⁴.

// RectArea returns the area of a b×h rectangle.
func RectArea(b, h float64) float64 {
	return b * h
}

// RectZ returns the section modulus of a b×h rectangle about its strong
// axis.
//
//	Z = b·h²/6
func RectZ(b, h float64) float64 {
	return b * h * h / 6
}

// RectI returns the moment of inertia of a b×h rectangle about its strong
// centroidal axis.
//
//	I = b·h³/12
func RectI(b, h float64) float64 {
	return b * h * h * h / 12
}

// HollowRectI returns the moment of inertia of a hollow rectangle (outer
// bo×ho, inner bi×hi, concentric) about the strong axis.
func HollowRectI(bo, ho, bi, hi float64) float64 {
	return RectI(bo, ho) - RectI(bi, hi)
}

// HollowRectZ returns the section modulus of the same hollow rectangle.
// The extreme fiber sits at ho/2 from the centroid.
func HollowRectZ(bo, ho, bi, hi float64) float64 {
	return HollowRectI(bo, ho, bi, hi) / (ho / 2)
}

// LShape is an angle section built from a vertical leg and a horizontal
// leg of equal thickness T. B and H are the overall outside dimensions.
//
// Decomposition used everywhere in this package (x measured from the
// outer face of the vertical leg):
//
//	leg 1: T wide, H tall, at 0 ≤ x ≤ T
//	leg 2: (B−T) wide, T tall, at T ≤ x ≤ B
type LShape struct {
	B, H, T float64
}

// Area returns the total section area.
func (s LShape) Area() float64 {
	return s.T*s.H + (s.B-s.T)*s.T
}

// CentroidX returns the horizontal centroid position x_g measured from
// the outer face of the vertical leg (area-weighted average).
func (s LShape) CentroidX() float64 {
	a1 := s.T * s.H
	x1 := s.T / 2
	a2 := (s.B - s.T) * s.T
	x2 := s.T + (s.B-s.T)/2
	return (a1*x1 + a2*x2) / (a1 + a2)
}

// Iy returns the moment of inertia about the vertical centroidal axis,
// assembled with the parallel-axis theorem: I = Σ(I0 + A·d²).
func (s LShape) Iy() float64 {
	xg := s.CentroidX()

	a1 := s.T * s.H
	x1 := s.T / 2
	i1 := s.H * s.T * s.T * s.T / 12

	a2 := (s.B - s.T) * s.T
	x2 := s.T + (s.B-s.T)/2
	i2 := s.T * (s.B - s.T) * (s.B - s.T) * (s.B - s.T) / 12

	d1 := x1 - xg
	d2 := x2 - xg
	return i1 + a1*d1*d1 + i2 + a2*d2*d2
}

// TShape is a tee section: a horizontal flange on top of a vertical web.
// B is the flange width, H the overall depth, TF the flange thickness and
// TW the web thickness. y is measured upward from the bottom of the web.
type TShape struct {
	B, H, TF, TW float64
}

// Area returns the total section area.
func (s TShape) Area() float64 {
	return s.B*s.TF + s.TW*(s.H-s.TF)
}

// CentroidY returns the vertical centroid position y_g measured from the
// bottom of the web.
func (s TShape) CentroidY() float64 {
	a1 := s.B * s.TF
	y1 := s.H - s.TF/2
	a2 := s.TW * (s.H - s.TF)
	y2 := (s.H - s.TF) / 2
	return (a1*y1 + a2*y2) / (a1 + a2)
}

// Ix returns the moment of inertia about the horizontal centroidal axis.
func (s TShape) Ix() float64 {
	yg := s.CentroidY()

	a1 := s.B * s.TF
	y1 := s.H - s.TF/2
	i1 := s.B * s.TF * s.TF * s.TF / 12

	hw := s.H - s.TF
	a2 := s.TW * hw
	y2 := hw / 2
	i2 := s.TW * hw * hw * hw / 12

	d1 := y1 - yg
	d2 := y2 - yg
	return i1 + a1*d1*d1 + i2 + a2*d2*d2
}

// HShape is a symmetric wide-flange (H / I) section. B is the flange
// width, H the overall depth, TF the flange thickness and TW the web
// thickness.
type HShape struct {
	B, H, TF, TW float64
}

// WebDepth returns the clear depth of the web between the flanges.
func (s HShape) WebDepth() float64 {
	return s.H - 2*s.TF
}

// Area returns the total section area.
func (s HShape) Area() float64 {
	return s.B*s.H - (s.B-s.TW)*s.WebDepth()
}

// Ix returns the moment of inertia about the strong centroidal axis,
// computed as the full rectangle minus the two side notches.
func (s HShape) Ix() float64 {
	hw := s.WebDepth()
	return (s.B*s.H*s.H*s.H - (s.B-s.TW)*hw*hw*hw) / 12
}

// Zx returns the strong-axis section modulus.
func (s HShape) Zx() float64 {
	return s.Ix() / (s.H / 2)
}
