package problemgen

import (
	"fmt"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
)

// genSection produces cross-section property problems. The shape climbs
// with the tier: plain rectangles at beginner, hollow rectangles at
// intermediate, composite L/T/H shapes at advanced.
func (g *Generator) genSection(tier Difficulty) *Problem {
	switch tier {
	case Beginner:
		return g.sectionRect(tier)
	case Intermediate:
		if g.rng.Float64() < 0.5 {
			return g.sectionHollow(tier)
		}
		return g.sectionRect(tier)
	default:
		switch g.rng.Intn(3) {
		case 0:
			return g.sectionL(tier)
		case 1:
			return g.sectionT(tier)
		default:
			return g.sectionH(tier)
		}
	}
}

func (g *Generator) sectionRect(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Rect())
	b, h := float64(t.B), float64(t.H)

	if g.rng.Float64() < 0.5 {
		z := mech.RectZ(b, h)
		var d derivation
		d.add("Z = b·h²/6 = %s×%s²/6 = %s mm³", fnum(b), fnum(h), fnum(z))

		choices := buildChoices(g.rng, z, choiceSpec{
			tol:          TolExact,
			positiveOnly: true,
			// Swapped dimensions and the wrong coefficient are the usual slips.
			priority:   []float64{mech.RectZ(h, b), b * h * h / 12, b * h * h / 3},
			candidates: []float64{mech.RectI(b, h), b * h},
		})

		return &Problem{
			Category:   CategorySection,
			Pattern:    "rect",
			Difficulty: tier,
			Target:     TargetZ,
			Text: fmt.Sprintf(
				"A rectangular section is b = %s mm wide and h = %s mm deep. Find the section modulus Z about the strong axis (mm³).",
				fnum(b), fnum(h)),
			Params:      Params{WidthMM: b, HeightMM: h},
			Answer:      z,
			Choices:     choices,
			Explanation: d.String(),
			Display:     Display{Shape: ShapeRect},
		}
	}

	i := mech.RectI(b, h)
	var d derivation
	d.add("I = b·h³/12 = %s×%s³/12 = %s mm⁴", fnum(b), fnum(h), fnum(i))

	choices := buildChoices(g.rng, i, choiceSpec{
		tol:          TolExact,
		positiveOnly: true,
		priority:     []float64{mech.RectI(h, b), b * h * h * h / 6, b * h * h * h / 3},
		candidates:   []float64{mech.RectZ(b, h), i / 2},
	})

	return &Problem{
		Category:   CategorySection,
		Pattern:    "rect",
		Difficulty: tier,
		Target:     TargetI,
		Text: fmt.Sprintf(
			"A rectangular section is b = %s mm wide and h = %s mm deep. Find the moment of inertia I about the strong centroidal axis (mm⁴).",
			fnum(b), fnum(h)),
		Params:      Params{WidthMM: b, HeightMM: h},
		Answer:      i,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeRect},
	}
}

func (g *Generator) sectionHollow(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Hollow())
	bo, ho := float64(t.BO), float64(t.HO)
	bi, hi := float64(t.BI), float64(t.HI)

	if g.rng.Float64() < 0.5 {
		i := mech.HollowRectI(bo, ho, bi, hi)
		var d derivation
		d.add("Outer rectangle: I₁ = %s×%s³/12 = %s mm⁴", fnum(bo), fnum(ho), fnum(mech.RectI(bo, ho)))
		d.add("Inner rectangle: I₂ = %s×%s³/12 = %s mm⁴", fnum(bi), fnum(hi), fnum(mech.RectI(bi, hi)))
		d.add("I = I₁ − I₂ = %s mm⁴", fnum(i))

		choices := buildChoices(g.rng, i, choiceSpec{
			tol:          TolExact,
			positiveOnly: true,
			// Forgetting to subtract, or subtracting the dimensions first.
			priority: []float64{
				mech.RectI(bo, ho),
				mech.RectI(bo-bi, ho-hi),
				mech.RectI(bi, hi),
			},
			candidates: []float64{i / 2},
		})

		return &Problem{
			Category:   CategorySection,
			Pattern:    "hollow",
			Difficulty: tier,
			Target:     TargetI,
			Text: fmt.Sprintf(
				"A hollow rectangular section has outer dimensions %s×%s mm and a concentric opening of %s×%s mm. Find I about the strong axis (mm⁴).",
				fnum(bo), fnum(ho), fnum(bi), fnum(hi)),
			Params:      Params{WidthMM: bo, HeightMM: ho, InnerWMM: bi, InnerHMM: hi},
			Answer:      i,
			Choices:     choices,
			Explanation: d.String(),
			Display:     Display{Shape: ShapeHollow},
		}
	}

	z := mech.HollowRectZ(bo, ho, bi, hi)
	i := mech.HollowRectI(bo, ho, bi, hi)
	var d derivation
	d.add("I = (%s×%s³ − %s×%s³)/12 = %s mm⁴", fnum(bo), fnum(ho), fnum(bi), fnum(hi), fnum(i))
	d.add("Z = I/(h/2) = %s/%s = %s mm³", fnum(i), fnum(ho/2), fnum(z))

	choices := buildChoices(g.rng, z, choiceSpec{
		tol:          TolExact,
		positiveOnly: true,
		// Subtracting section moduli directly is the classic invalid shortcut.
		priority: []float64{
			mech.RectZ(bo, ho) - mech.RectZ(bi, hi),
			i / ho,
			mech.RectZ(bo, ho),
		},
		candidates: []float64{z / 2, 2 * z},
	})

	return &Problem{
		Category:   CategorySection,
		Pattern:    "hollow",
		Difficulty: tier,
		Target:     TargetZ,
		Text: fmt.Sprintf(
			"A hollow rectangular section has outer dimensions %s×%s mm and a concentric opening of %s×%s mm. Find the section modulus Z about the strong axis (mm³).",
			fnum(bo), fnum(ho), fnum(bi), fnum(hi)),
		Params:      Params{WidthMM: bo, HeightMM: ho, InnerWMM: bi, InnerHMM: hi},
		Answer:      z,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeHollow},
	}
}

func (g *Generator) sectionL(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.LShape())
	s := mech.LShape{B: float64(t.B), H: float64(t.H), T: float64(t.T)}
	a1 := s.T * s.H
	a2 := (s.B - s.T) * s.T

	if g.rng.Float64() < 0.5 {
		xg := s.CentroidX()
		var d derivation
		d.add("Leg 1 (vertical): A₁ = %s mm² at x₁ = %s mm", fnum(a1), fnum(s.T/2))
		d.add("Leg 2 (horizontal): A₂ = %s mm² at x₂ = %s mm", fnum(a2), fnum(s.T+(s.B-s.T)/2))
		d.add("x_g = (A₁x₁ + A₂x₂)/(A₁+A₂) = %s mm", fnum(xg))

		choices := buildChoices(g.rng, xg, choiceSpec{
			tol:          TolExact,
			positiveOnly: true,
			// The gross-rectangle centroid and the wrong-side measurement.
			priority:   []float64{s.B / 2, s.B - xg, (s.T/2 + s.T + (s.B-s.T)/2) / 2},
			candidates: []float64{s.T, xg / 2},
		})

		return &Problem{
			Category:   CategorySection,
			Pattern:    "l-shape",
			Difficulty: tier,
			Target:     TargetXg,
			Text: fmt.Sprintf(
				"An L-section has overall width B = %s mm, height H = %s mm and uniform thickness t = %s mm. Find the horizontal centroid x_g measured from the outer face of the vertical leg (mm).",
				fnum(s.B), fnum(s.H), fnum(s.T)),
			Params:      Params{WidthMM: s.B, HeightMM: s.H, FlangeMM: s.T},
			Answer:      xg,
			Choices:     choices,
			Explanation: d.String(),
			Display:     Display{Shape: ShapeL},
		}
	}

	iy := s.Iy()
	xg := s.CentroidX()
	i0 := s.H*s.T*s.T*s.T/12 + s.T*(s.B-s.T)*(s.B-s.T)*(s.B-s.T)/12
	var d derivation
	d.add("x_g = %s mm (area-weighted average).", fnum(xg))
	d.add("Parallel-axis theorem per leg: I = Σ(I₀ + A·d²)")
	d.add("I_y = %s mm⁴", fnum(iy))

	choices := buildChoices(g.rng, iy, choiceSpec{
		tol:          TolExact,
		positiveOnly: true,
		// Dropping the A·d² terms is the canonical composite-section error.
		priority:   []float64{i0, mech.RectI(s.H, s.B), iy - i0},
		candidates: []float64{iy / 2, 2 * iy},
	})

	return &Problem{
		Category:   CategorySection,
		Pattern:    "l-shape",
		Difficulty: tier,
		Target:     TargetI,
		Text: fmt.Sprintf(
			"An L-section has overall width B = %s mm, height H = %s mm and uniform thickness t = %s mm. Find I about the vertical centroidal axis (mm⁴).",
			fnum(s.B), fnum(s.H), fnum(s.T)),
		Params:      Params{WidthMM: s.B, HeightMM: s.H, FlangeMM: s.T},
		Answer:      iy,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeL},
	}
}

func (g *Generator) sectionT(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.TShape())
	s := mech.TShape{B: float64(t.B), H: float64(t.H), TF: float64(t.TF), TW: float64(t.TW)}

	if g.rng.Float64() < 0.5 {
		yg := s.CentroidY()
		var d derivation
		d.add("Flange: A₁ = %s mm² at y₁ = %s mm", fnum(s.B*s.TF), fnum(s.H-s.TF/2))
		d.add("Web: A₂ = %s mm² at y₂ = %s mm", fnum(s.TW*(s.H-s.TF)), fnum((s.H-s.TF)/2))
		d.add("y_g = (A₁y₁ + A₂y₂)/(A₁+A₂) = %s mm", fnum(yg))

		choices := buildChoices(g.rng, yg, choiceSpec{
			tol:          TolExact,
			positiveOnly: true,
			priority:     []float64{s.H / 2, s.H - yg, (s.H - s.TF) / 2},
			candidates:   []float64{s.H - s.TF, yg / 2},
		})

		return &Problem{
			Category:   CategorySection,
			Pattern:    "t-shape",
			Difficulty: tier,
			Target:     TargetYg,
			Text: fmt.Sprintf(
				"A T-section has a %s×%s mm flange on a %s mm thick web, overall depth H = %s mm. Find the centroid height y_g from the bottom of the web (mm).",
				fnum(s.B), fnum(s.TF), fnum(s.TW), fnum(s.H)),
			Params:      Params{WidthMM: s.B, HeightMM: s.H, FlangeMM: s.TF, WebMM: s.TW},
			Answer:      yg,
			Choices:     choices,
			Explanation: d.String(),
			Display:     Display{Shape: ShapeT},
		}
	}

	ix := s.Ix()
	hw := s.H - s.TF
	i0 := s.B*s.TF*s.TF*s.TF/12 + s.TW*hw*hw*hw/12
	var d derivation
	d.add("y_g = %s mm (area-weighted average).", fnum(s.CentroidY()))
	d.add("I = Σ(I₀ + A·d²) over flange and web = %s mm⁴", fnum(ix))

	choices := buildChoices(g.rng, ix, choiceSpec{
		tol:          TolExact,
		positiveOnly: true,
		priority:     []float64{i0, mech.RectI(s.B, s.H), ix - i0},
		candidates:   []float64{ix / 2},
	})

	return &Problem{
		Category:   CategorySection,
		Pattern:    "t-shape",
		Difficulty: tier,
		Target:     TargetI,
		Text: fmt.Sprintf(
			"A T-section has a %s×%s mm flange on a %s mm thick web, overall depth H = %s mm. Find I about the horizontal centroidal axis (mm⁴).",
			fnum(s.B), fnum(s.TF), fnum(s.TW), fnum(s.H)),
		Params:      Params{WidthMM: s.B, HeightMM: s.H, FlangeMM: s.TF, WebMM: s.TW},
		Answer:      ix,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeT},
	}
}

func (g *Generator) sectionH(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.HShape())
	s := mech.HShape{B: float64(t.B), H: float64(t.H), TF: float64(t.TF), TW: float64(t.TW)}
	hw := s.WebDepth()

	if g.rng.Float64() < 0.5 {
		i := s.Ix()
		var d derivation
		d.add("Full rectangle minus the two side notches:")
		d.add("I = (B·H³ − (B−t_w)·h_w³)/12 = (%s×%s³ − %s×%s³)/12 = %s mm⁴",
			fnum(s.B), fnum(s.H), fnum(s.B-s.TW), fnum(hw), fnum(i))

		choices := buildChoices(g.rng, i, choiceSpec{
			tol:          TolExact,
			positiveOnly: true,
			priority:     []float64{mech.RectI(s.B, s.H), mech.RectI(s.B, s.H) - mech.RectI(s.B, hw), i * 2},
			candidates:   []float64{i / 2},
		})

		return &Problem{
			Category:   CategorySection,
			Pattern:    "h-shape",
			Difficulty: tier,
			Target:     TargetI,
			Text: fmt.Sprintf(
				"An H-section is %s mm wide and %s mm deep with %s mm flanges and a %s mm web. Find I about the strong axis (mm⁴).",
				fnum(s.B), fnum(s.H), fnum(s.TF), fnum(s.TW)),
			Params:      Params{WidthMM: s.B, HeightMM: s.H, FlangeMM: s.TF, WebMM: s.TW},
			Answer:      i,
			Choices:     choices,
			Explanation: d.String(),
			Display:     Display{Shape: ShapeH},
		}
	}

	z := s.Zx()
	i := s.Ix()
	var d derivation
	d.add("I = %s mm⁴", fnum(i))
	d.add("Z = I/(H/2) = %s/%s = %s mm³", fnum(i), fnum(s.H/2), fnum(z))

	choices := buildChoices(g.rng, z, choiceSpec{
		tol:          TolExact,
		positiveOnly: true,
		priority:     []float64{i / s.H, mech.RectZ(s.B, s.H), z / 2},
		candidates:   []float64{2 * z},
	})

	return &Problem{
		Category:   CategorySection,
		Pattern:    "h-shape",
		Difficulty: tier,
		Target:     TargetZ,
		Text: fmt.Sprintf(
			"An H-section is %s mm wide and %s mm deep with %s mm flanges and a %s mm web. Find the section modulus Z about the strong axis (mm³).",
			fnum(s.B), fnum(s.H), fnum(s.TF), fnum(s.TW)),
		Params:      Params{WidthMM: s.B, HeightMM: s.H, FlangeMM: s.TF, WebMM: s.TW},
		Answer:      z,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeH},
	}
}
