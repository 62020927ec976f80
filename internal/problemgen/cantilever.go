package problemgen

import (
	"fmt"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
)

// genCantilever produces cantilever problems: fixed-end reaction at
// beginner, fixed-end moment above, with concentrated and distributed
// variants.
func (g *Generator) genCantilever(tier Difficulty) *Problem {
	udl := g.rng.Float64() < 0.5
	if udl {
		return g.cantileverUDL(tier)
	}
	return g.cantileverConcentrated(tier)
}

func (g *Generator) cantileverConcentrated(tier Difficulty) *Problem {
	// Clean by construction: M = P·a and V = P with integer P, a.
	p := float64(pick(g.rng, g.pools.Beam()).P)
	a := float64(1 + g.rng.Intn(4))
	m, v := mech.CantileverConcentrated(p, a)

	if tier == Beginner {
		var d derivation
		d.add("Vertical equilibrium at the fixed end:")
		d.add("V = P = %s kN", fnum(v))

		choices := buildChoices(g.rng, v, choiceSpec{
			tol:          TolDecimal,
			positiveOnly: true,
			priority:     []float64{p / 2, p * a, 2 * p},
			candidates:   []float64{p + a, p - a},
		})

		return &Problem{
			Category:   CategoryCantilever,
			Pattern:    "concentrated",
			Difficulty: tier,
			Target:     TargetVa,
			Text: fmt.Sprintf(
				"A cantilever carries a concentrated load P = %s kN at a = %s m from the fixed end. Find the vertical reaction at the fixed end (kN).",
				fnum(p), fnum(a)),
			Params:      Params{LoadKN: p, DistAM: a},
			Answer:      v,
			Choices:     choices,
			Explanation: d.String(),
		}
	}

	var d derivation
	d.add("Moment equilibrium about the fixed end:")
	d.add("M = P·a = %s×%s = %s kN·m", fnum(p), fnum(a), fnum(m))

	choices := buildChoices(g.rng, m, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// P·a/2 treats the load as distributed; P·a/4 imports the
		// simple-beam PL/4.
		priority:   []float64{p * a / 2, p * a / 4, 2 * p * a},
		candidates: []float64{p, p * a * a / 2},
	})

	return &Problem{
		Category:   CategoryCantilever,
		Pattern:    "concentrated",
		Difficulty: tier,
		Target:     TargetMfix,
		Text: fmt.Sprintf(
			"A cantilever carries a concentrated load P = %s kN at a = %s m from the fixed end. Find the magnitude of the fixed-end moment (kN·m).",
			fnum(p), fnum(a)),
		Params:      Params{LoadKN: p, DistAM: a},
		Answer:      m,
		Choices:     choices,
		Explanation: d.String(),
	}
}

func (g *Generator) cantileverUDL(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.CantileverUDL())
	w, l := float64(t.W), float64(t.L)
	m, v := mech.CantileverUDL(w, l)

	if tier == Beginner {
		var d derivation
		d.add("The fixed end carries the whole load:")
		d.add("V = w·L = %s×%s = %s kN", fnum(w), fnum(l), fnum(v))

		choices := buildChoices(g.rng, v, choiceSpec{
			tol:          TolDecimal,
			positiveOnly: true,
			priority:     []float64{w * l / 2, w * l * l / 2, w},
			candidates:   []float64{2 * w * l},
		})

		return &Problem{
			Category:   CategoryCantilever,
			Pattern:    "udl",
			Difficulty: tier,
			Target:     TargetVa,
			Text: fmt.Sprintf(
				"A cantilever of length L = %s m carries a uniformly distributed load w = %s kN/m over its full length. Find the vertical reaction at the fixed end (kN).",
				fnum(l), fnum(w)),
			Params:      Params{SpanM: l, UDLKNM: w},
			Answer:      v,
			Choices:     choices,
			Explanation: d.String(),
		}
	}

	var d derivation
	d.add("Resultant w·L = %s kN acts at the midpoint, L/2 = %s m from the fixed end.", fnum(w*l), fnum(l/2))
	d.add("M = w·L·(L/2) = w·L²/2 = %s×%s²/2 = %s kN·m", fnum(w), fnum(l), fnum(m))

	choices := buildChoices(g.rng, m, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// wL²/8 is the simple-beam formula; wL² forgets the /2.
		priority:   []float64{w * l * l / 8, w * l * l, w * l * l / 4},
		candidates: []float64{w * l, m / 2},
	})

	return &Problem{
		Category:   CategoryCantilever,
		Pattern:    "udl",
		Difficulty: tier,
		Target:     TargetMfix,
		Text: fmt.Sprintf(
			"A cantilever of length L = %s m carries a uniformly distributed load w = %s kN/m over its full length. Find the magnitude of the fixed-end moment (kN·m).",
			fnum(l), fnum(w)),
		Params:      Params{SpanM: l, UDLKNM: w},
		Answer:      m,
		Choices:     choices,
		Explanation: d.String(),
	}
}
