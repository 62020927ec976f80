package problemgen

import (
	"fmt"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
)

// genBending asks for the extreme-fiber stress σ = M/Z on a rectangular
// section. The pool guarantees σ is an exact integer; the distractors
// come from the swapped-dimension Z and coefficient slips.
func (g *Generator) genBending(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Bending())
	b, h := float64(t.B), float64(t.H)
	m := float64(t.M)
	z := mech.RectZ(b, h)
	sigma := mech.BendingStress(m, z)

	var d derivation
	d.add("Z = b·h²/6 = %s×%s²/6 = %s mm³", fnum(b), fnum(h), fnum(z))
	d.add("σ = M/Z = %s×10⁶/%s = %s N/mm²", fnum(m), fnum(z), fnum(sigma))

	zSwap := mech.RectZ(h, b)
	choices := buildChoices(g.rng, sigma, choiceSpec{
		tol:          TolExact,
		positiveOnly: true,
		// Swapping b and h in Z changes σ by the ratio h/b.
		priority:   []float64{mech.BendingStress(m, zSwap), sigma / 2, 2 * sigma},
		candidates: []float64{mech.BendingStress(m, mech.RectI(b, h)), sigma / 10},
	})

	return &Problem{
		Category:   CategoryBending,
		Pattern:    "rect",
		Difficulty: tier,
		Target:     TargetSigma,
		Text: fmt.Sprintf(
			"A rectangular beam section b = %s mm, h = %s mm carries a bending moment M = %s kN·m. Find the extreme-fiber bending stress (N/mm²).",
			fnum(b), fnum(h), fnum(m)),
		Params:      Params{WidthMM: b, HeightMM: h, MomentKNM: m},
		Answer:      sigma,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeRect},
	}
}

// genCombined covers axial-plus-bending superposition. Beginner and
// intermediate pose the direct N/A ± M/Z question; advanced swaps in the
// eccentric short column, including the kern-limit variant.
func (g *Generator) genCombined(tier Difficulty) *Problem {
	if tier == Advanced {
		if g.rng.Float64() < 0.5 {
			return g.combinedKernLimit(tier)
		}
		return g.combinedEccentric(tier)
	}
	return g.combinedDirect(tier)
}

func (g *Generator) combinedDirect(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Combined())
	b, h := float64(t.B), float64(t.H)
	n, m := float64(t.N), t.M
	a := mech.RectArea(b, h)
	z := mech.RectZ(b, h)
	smax, smin := mech.CombinedStress(n, a, m, z)

	var d derivation
	d.add("A = %s mm², Z = %s mm³", fnum(a), fnum(z))
	d.add("N/A = %s×10³/%s = %s N/mm²", fnum(n), fnum(a), fnum(n*1e3/a))
	d.add("M/Z = %s×10⁶/%s = %s N/mm²", fnum(m), fnum(z), fnum(m*1e6/z))
	d.add("σ_max = N/A + M/Z = %s N/mm²", fnum(smax))

	choices := buildChoices(g.rng, smax, choiceSpec{
		tol: TolDecimal,
		// The opposite face, and each term taken alone.
		priority:   []float64{smin, m * 1e6 / z, n * 1e3 / a},
		candidates: []float64{smax / 2, 2 * smax},
	})

	return &Problem{
		Category:   CategoryCombined,
		Pattern:    "axial-bending",
		Difficulty: tier,
		Target:     TargetSigmaMax,
		Text: fmt.Sprintf(
			"A rectangular member b = %s mm, h = %s mm carries an axial tension N = %s kN together with a bending moment M = %s kN·m. Find the maximum normal stress (N/mm²).",
			fnum(b), fnum(h), fnum(n), fnum(m)),
		Params:      Params{WidthMM: b, HeightMM: h, AxialKN: n, MomentKNM: m},
		Answer:      smax,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeRect},
	}
}

func (g *Generator) combinedEccentric(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Eccentric())
	b, h := float64(t.B), float64(t.H)
	n, e := float64(t.N), float64(t.E)
	a := mech.RectArea(b, h)
	z := mech.RectZ(b, h)
	smax, smin := mech.EccentricStress(n, a, e, z)

	var d derivation
	d.add("A = %s mm², Z = %s mm³", fnum(a), fnum(z))
	d.add("σ = N/A ± N·e/Z = %s ± %s N/mm²", fnum(n*1e3/a), fnum(n*1e3*e/z))
	d.add("σ_max = %s N/mm² (compression, loaded edge)", fnum(smax))

	choices := buildChoices(g.rng, smax, choiceSpec{
		tol: TolDecimal,
		// The far edge (possibly tensile), and the eccentricity ignored.
		priority:   []float64{smin, n * 1e3 / a, n * 1e3 * e / z},
		candidates: []float64{smax / 2, 2 * smax},
	})

	return &Problem{
		Category:   CategoryCombined,
		Pattern:    "eccentric",
		Difficulty: tier,
		Target:     TargetSigmaMax,
		Text: fmt.Sprintf(
			"A short rectangular column b = %s mm, h = %s mm carries a compressive load N = %s kN at an eccentricity e = %s mm along the depth. Find the maximum edge stress, compression positive (N/mm²).",
			fnum(b), fnum(h), fnum(n), fnum(e)),
		Params:      Params{WidthMM: b, HeightMM: h, AxialKN: n, EccMM: e},
		Answer:      smax,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeRect},
	}
}

func (g *Generator) combinedKernLimit(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Eccentric())
	b, h := float64(t.B), float64(t.H)
	a := mech.RectArea(b, h)
	z := mech.RectZ(b, h)
	emax := mech.NoTensionLimit(z, a)

	var d derivation
	d.add("No tension requires N/A ≥ N·e/Z, so e ≤ Z/A.")
	d.add("e_max = Z/A = (b·h²/6)/(b·h) = h/6 = %s/6 = %s mm", fnum(h), fnum(emax))

	choices := buildChoices(g.rng, emax, choiceSpec{
		tol:          TolExact,
		positiveOnly: true,
		// h/3 is the full kern width misread as the limit; h/2 the edge.
		priority:   []float64{h / 3, h / 12, h / 2},
		candidates: []float64{b / 6, h / 4},
	})

	return &Problem{
		Category:   CategoryCombined,
		Pattern:    "kern",
		Difficulty: tier,
		Target:     TargetEmax,
		Text: fmt.Sprintf(
			"A short rectangular column b = %s mm, h = %s mm carries a compressive load eccentric along the depth h. Find the largest eccentricity for which no tension occurs anywhere in the section (mm).",
			fnum(b), fnum(h)),
		Params:      Params{WidthMM: b, HeightMM: h},
		Answer:      emax,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeRect},
	}
}

// genShear asks for the peak shear stress: the parabolic 1.5·Q/A of a
// rectangle, or the web-average stress of an H section at advanced.
func (g *Generator) genShear(tier Difficulty) *Problem {
	if tier == Advanced {
		return g.shearWeb(tier)
	}
	return g.shearRect(tier)
}

func (g *Generator) shearRect(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.ShearRect())
	b, h := float64(t.B), float64(t.H)
	q := float64(t.Q)
	a := mech.RectArea(b, h)
	tau := mech.ShearMaxRect(q, a)

	var d derivation
	d.add("A = b·h = %s×%s = %s mm²", fnum(b), fnum(h), fnum(a))
	d.add("The parabolic distribution peaks at mid-depth at 1.5 times the average:")
	d.add("τ_max = 1.5·Q/A = 1.5×%s×10³/%s = %s N/mm²", fnum(q), fnum(a), fnum(tau))

	choices := buildChoices(g.rng, tau, choiceSpec{
		tol:          TolExact,
		positiveOnly: true,
		// The plain average, and the circular-section factor.
		priority:   []float64{q * 1e3 / a, 4.0 / 3.0 * q * 1e3 / a, 2 * tau},
		candidates: []float64{tau / 2, 3 * q * 1e3 / a},
	})

	return &Problem{
		Category:   CategoryShear,
		Pattern:    "rect",
		Difficulty: tier,
		Target:     TargetTau,
		Text: fmt.Sprintf(
			"A rectangular section b = %s mm, h = %s mm carries a shear force Q = %s kN. Find the maximum shear stress (N/mm²).",
			fnum(b), fnum(h), fnum(q)),
		Params:      Params{WidthMM: b, HeightMM: h, ShearKN: q},
		Answer:      tau,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeRect},
	}
}

func (g *Generator) shearWeb(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.ShearWeb())
	b, h := float64(t.B), float64(t.H)
	tf, tw := float64(t.TF), float64(t.TW)
	q := float64(t.Q)
	hw := h - 2*tf
	tau := mech.ShearWebH(q, tw, hw)

	var d derivation
	d.add("Web depth h_w = H − 2·t_f = %s − 2×%s = %s mm", fnum(h), fnum(tf), fnum(hw))
	d.add("The web carries the whole shear:")
	d.add("τ = Q/(t_w·h_w) = %s×10³/(%s×%s) = %s N/mm²", fnum(q), fnum(tw), fnum(hw), fnum(tau))

	s := mech.HShape{B: b, H: h, TF: tf, TW: tw}
	choices := buildChoices(g.rng, tau, choiceSpec{
		tol:          TolExact,
		positiveOnly: true,
		// Spreading Q over the gross area, or using the full depth.
		priority:   []float64{q * 1e3 / s.Area(), q * 1e3 / (tw * h), 1.5 * tau},
		candidates: []float64{tau / 2, 2 * tau},
	})

	return &Problem{
		Category:   CategoryShear,
		Pattern:    "web",
		Difficulty: tier,
		Target:     TargetTau,
		Text: fmt.Sprintf(
			"An H-section %s mm wide and %s mm deep with %s mm flanges and a %s mm web carries a shear force Q = %s kN. Assuming the web carries the whole shear, find the web shear stress (N/mm²).",
			fnum(b), fnum(h), fnum(tf), fnum(tw), fnum(q)),
		Params:      Params{WidthMM: b, HeightMM: h, FlangeMM: tf, WebMM: tw, ShearKN: q},
		Answer:      tau,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Shape: ShapeH},
	}
}
