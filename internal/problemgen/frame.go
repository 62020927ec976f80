package problemgen

import (
	"fmt"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
)

// genFrame covers the three-hinge portal frame: the horizontal thrust
// under a central vertical load, the column-head moment under a beam UDL,
// and the lateral-load case at advanced.
func (g *Generator) genFrame(tier Difficulty) *Problem {
	if tier == Advanced {
		switch g.rng.Intn(3) {
		case 0:
			return g.frameLateral(tier)
		case 1:
			return g.frameUDL(tier)
		default:
			return g.frameCentralMoment(tier)
		}
	}
	if tier == Intermediate && g.rng.Float64() < 0.5 {
		return g.frameCentralMoment(tier)
	}
	return g.frameCentralThrust(tier)
}

func (g *Generator) frameCentralThrust(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Frame())
	p, l, h := float64(t.P), float64(t.L), float64(t.HCol)
	thrust, _ := mech.PortalCentralLoad(p, l, h)

	var d derivation
	d.add("Vertical reactions: V = P/2 each by symmetry.")
	d.add("Moments about the crown hinge for one half:")
	d.add("H = P·L/(4h) = %s×%s/(4×%s) = %s kN", fnum(p), fnum(l), fnum(h), fnum(thrust))

	choices := buildChoices(g.rng, thrust, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// Dropping the crown-hinge condition, or halving slips.
		priority:   []float64{p / 2, p * l / (2 * h), p * l / (8 * h)},
		candidates: []float64{p, thrust * 2},
	})

	return &Problem{
		Category:   CategoryFrame,
		Pattern:    "central-load",
		Difficulty: tier,
		Target:     TargetH,
		Text: fmt.Sprintf(
			"A three-hinge portal frame (span L = %s m, column height h = %s m, hinge at the beam midspan) carries a vertical load P = %s kN at midspan. Find the horizontal reaction at a base (kN).",
			fnum(l), fnum(h), fnum(p)),
		Params:      Params{SpanM: l, ColumnHM: h, LoadKN: p},
		Answer:      thrust,
		Choices:     choices,
		Explanation: d.String(),
	}
}

func (g *Generator) frameCentralMoment(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Frame())
	p, l, h := float64(t.P), float64(t.L), float64(t.HCol)
	thrust, m := mech.PortalCentralLoad(p, l, h)

	var d derivation
	d.add("H = P·L/(4h) = %s kN", fnum(thrust))
	d.add("The column head carries the thrust times the column height:")
	d.add("M = H·h = %s×%s = %s kN·m", fnum(thrust), fnum(h), fnum(m))

	choices := buildChoices(g.rng, m, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// M = PL/4 numerically, so PL/8 and PL/2 are the near misses;
		// quoting H itself confuses the two quantities.
		priority:   []float64{p * l / 8, p * l / 2, thrust},
		candidates: []float64{p * h / 2, m * 2},
	})

	return &Problem{
		Category:   CategoryFrame,
		Pattern:    "central-load",
		Difficulty: tier,
		Target:     TargetMmax,
		Text: fmt.Sprintf(
			"A three-hinge portal frame (span L = %s m, column height h = %s m, hinge at the beam midspan) carries a vertical load P = %s kN at midspan. Find the magnitude of the bending moment at a column head (kN·m).",
			fnum(l), fnum(h), fnum(p)),
		Params:      Params{SpanM: l, ColumnHM: h, LoadKN: p},
		Answer:      m,
		Choices:     choices,
		Explanation: d.String(),
	}
}

func (g *Generator) frameUDL(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.FrameUDL())
	h := float64(pick(g.rng, []int{3, 4, 5, 6}))
	w, l := float64(t.W), float64(t.L)
	m := mech.PortalUDL(w, l)

	var d derivation
	d.add("The crown hinge makes each half behave like a simple half-span:")
	d.add("M = w·L²/8 = %s×%s²/8 = %s kN·m", fnum(w), fnum(l), fnum(m))

	choices := buildChoices(g.rng, m, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		priority:     []float64{w * l * l / 2, w * l * l / 4, w * l * l / 12},
		candidates:   []float64{w * l / 2, m * 2},
	})

	return &Problem{
		Category:   CategoryFrame,
		Pattern:    "udl",
		Difficulty: tier,
		Target:     TargetMmax,
		Text: fmt.Sprintf(
			"A three-hinge portal frame (span L = %s m, column height h = %s m) carries a uniform load w = %s kN/m across the beam. Find the magnitude of the bending moment at a column head (kN·m).",
			fnum(l), fnum(h), fnum(w)),
		Params:      Params{SpanM: l, ColumnHM: h, UDLKNM: w},
		Answer:      m,
		Choices:     choices,
		Explanation: d.String(),
	}
}

func (g *Generator) frameLateral(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Frame())
	p, l, h := float64(t.P), float64(t.L), float64(t.HCol)
	thrust, m := mech.PortalLateralLoad(p, h)

	if g.rng.Float64() < 0.5 {
		var d derivation
		d.add("The crown hinge splits the lateral load equally between the bases:")
		d.add("H = P/2 = %s kN", fnum(thrust))

		choices := buildChoices(g.rng, thrust, choiceSpec{
			tol:          TolDecimal,
			positiveOnly: true,
			priority:     []float64{p, p * h / l, p / 4},
			candidates:   []float64{p * l / (4 * h), 2 * p},
		})

		return &Problem{
			Category:   CategoryFrame,
			Pattern:    "lateral",
			Difficulty: tier,
			Target:     TargetH,
			Text: fmt.Sprintf(
				"A three-hinge portal frame (span L = %s m, column height h = %s m) carries a horizontal load P = %s kN at a column head. Find the horizontal reaction at each base (kN).",
				fnum(l), fnum(h), fnum(p)),
			Params:      Params{SpanM: l, ColumnHM: h, LoadKN: p},
			Answer:      thrust,
			Choices:     choices,
			Explanation: d.String(),
		}
	}

	var d derivation
	d.add("H = P/2 at each base; the loaded column head sees")
	d.add("M = H·h = (P/2)·h = %s×%s = %s kN·m", fnum(p/2), fnum(h), fnum(m))

	choices := buildChoices(g.rng, m, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// P·h forgets the base split; P·h/4 over-splits it.
		priority:   []float64{p * h, p * h / 4, p * l / 4},
		candidates: []float64{p / 2, m * 2},
	})

	return &Problem{
		Category:   CategoryFrame,
		Pattern:    "lateral",
		Difficulty: tier,
		Target:     TargetMmax,
		Text: fmt.Sprintf(
			"A three-hinge portal frame (span L = %s m, column height h = %s m) carries a horizontal load P = %s kN at a column head. Find the magnitude of the bending moment at the loaded column head (kN·m).",
			fnum(l), fnum(h), fnum(p)),
		Params:      Params{SpanM: l, ColumnHM: h, LoadKN: p},
		Answer:      m,
		Choices:     choices,
		Explanation: d.String(),
	}
}
