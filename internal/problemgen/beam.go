package problemgen

import (
	"fmt"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
)

// maxCleanRetries bounds the resampling loops that look for a clean
// draw after the fact (e.g. an integer evaluation position). On
// exhaustion the last draw is accepted as-is: a slightly imperfect
// problem beats no problem.
const maxCleanRetries = 10

// genSimpleBeam produces simple-beam problems. Beginner asks for a
// reaction, intermediate for the maximum moment, advanced for the moment
// or shear at an arbitrary position under a distributed load.
func (g *Generator) genSimpleBeam(tier Difficulty) *Problem {
	switch tier {
	case Beginner:
		return g.simpleBeamReaction(tier)
	case Advanced:
		return g.simpleBeamUDLAt(tier)
	default:
		if g.rng.Float64() < 0.5 {
			return g.simpleBeamMmax(tier)
		}
		return g.simpleBeamUDLMmax(tier)
	}
}

func (g *Generator) simpleBeamReaction(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Beam())
	p, l, a := float64(t.P), float64(t.L), float64(t.A)
	b := l - a
	va, vb, _ := mech.SimpleBeamConcentrated(p, l, a)

	target, answer, other := TargetVa, va, vb
	if g.rng.Float64() < 0.5 {
		target, answer, other = TargetVb, vb, va
	}
	side := "left"
	if target == TargetVb {
		side = "right"
	}

	var d derivation
	d.add("Take moments about the opposite support.")
	if target == TargetVa {
		d.add("V_A = P·b/L = %s×%s/%s = %s kN", fnum(p), fnum(b), fnum(l), fnum(va))
	} else {
		d.add("V_B = P·a/L = %s×%s/%s = %s kN", fnum(p), fnum(a), fnum(l), fnum(vb))
	}
	d.add("Check: V_A + V_B = %s kN = P.", fnum(va+vb))

	choices := buildChoices(g.rng, answer, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// Swapping a and b is the classic error; halving the load the next.
		priority:   []float64{other, p / 2, p},
		candidates: []float64{p * a * b / l, answer * 2},
	})

	return &Problem{
		Category:   CategorySimpleBeam,
		Pattern:    "concentrated",
		Difficulty: tier,
		Target:     target,
		Text: fmt.Sprintf(
			"A simply supported beam of span L = %s m carries a concentrated load P = %s kN at a = %s m from the left support. Find the %s support reaction (kN).",
			fnum(l), fnum(p), fnum(a), side),
		Params:      Params{SpanM: l, LoadKN: p, DistAM: a, DistBM: b},
		Answer:      answer,
		Choices:     choices,
		Explanation: d.String(),
	}
}

func (g *Generator) simpleBeamMmax(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Beam())
	p, l, a := float64(t.P), float64(t.L), float64(t.A)
	b := l - a
	va, _, mmax := mech.SimpleBeamConcentrated(p, l, a)

	var d derivation
	d.add("V_A = P·b/L = %s×%s/%s = %s kN", fnum(p), fnum(b), fnum(l), fnum(va))
	d.add("The moment peaks under the load.")
	d.add("M_max = V_A·a = P·a·b/L = %s×%s×%s/%s = %s kN·m", fnum(p), fnum(a), fnum(b), fnum(l), fnum(mmax))

	choices := buildChoices(g.rng, mmax, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// PL/4 is the central-load formula applied blindly; P·a ignores
		// the reaction entirely.
		priority:   []float64{p * l / 4, p * a, p * a * b / (2 * l)},
		candidates: []float64{p * b, mmax * 2},
	})

	return &Problem{
		Category:   CategorySimpleBeam,
		Pattern:    "concentrated",
		Difficulty: tier,
		Target:     TargetMmax,
		Text: fmt.Sprintf(
			"A simply supported beam of span L = %s m carries a concentrated load P = %s kN at a = %s m from the left support. Find the maximum bending moment M_max (kN·m).",
			fnum(l), fnum(p), fnum(a)),
		Params:      Params{SpanM: l, LoadKN: p, DistAM: a, DistBM: b},
		Answer:      mmax,
		Choices:     choices,
		Explanation: d.String(),
	}
}

func (g *Generator) simpleBeamUDLMmax(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.UDL())
	w, l := float64(t.W), float64(t.L)
	v, mmax := mech.SimpleBeamUDL(w, l)

	var d derivation
	d.add("V = w·L/2 = %s×%s/2 = %s kN", fnum(w), fnum(l), fnum(v))
	d.add("M_max = w·L²/8 = %s×%s²/8 = %s kN·m (at midspan)", fnum(w), fnum(l), fnum(mmax))

	choices := buildChoices(g.rng, mmax, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// wL²/2 is the cantilever formula; wL²/4 a halving slip.
		priority:   []float64{w * l * l / 2, w * l * l / 4, w * l * l / 12},
		candidates: []float64{w * l / 2, w * l * l / 16},
	})

	return &Problem{
		Category:   CategorySimpleBeam,
		Pattern:    "udl",
		Difficulty: tier,
		Target:     TargetMmax,
		Text: fmt.Sprintf(
			"A simply supported beam of span L = %s m carries a uniformly distributed load w = %s kN/m over the full span. Find the maximum bending moment M_max (kN·m).",
			fnum(l), fnum(w)),
		Params:      Params{SpanM: l, UDLKNM: w},
		Answer:      mmax,
		Choices:     choices,
		Explanation: d.String(),
	}
}

// simpleBeamUDLAt asks for M(x) or Q(x) at an interior position. The
// pool guarantees clean end values but not every x, so x is resampled a
// bounded number of times until the targets are integral.
func (g *Generator) simpleBeamUDLAt(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.UDL())
	w, l := t.W, t.L

	x := 1
	for i := 0; i < maxCleanRetries; i++ {
		x = 1 + g.rng.Intn(l-1)
		if x*2 == l {
			continue // midspan duplicates the Mmax problems
		}
		if (w*x*(l-x))%2 == 0 && (w*l)%2 == 0 {
			break
		}
	}

	wf, lf, xf := float64(w), float64(l), float64(x)
	m, q := mech.SimpleBeamUDLAt(wf, lf, xf)

	if g.rng.Float64() < 0.5 {
		var d derivation
		d.add("V_A = w·L/2 = %s kN", fnum(wf*lf/2))
		d.add("M(x) = V_A·x − w·x²/2 = w·x·(L−x)/2")
		d.add("M(%s) = %s×%s×%s/2 = %s kN·m", fnum(xf), fnum(wf), fnum(xf), fnum(lf-xf), fnum(m))

		choices := buildChoices(g.rng, m, choiceSpec{
			tol:          TolDecimal,
			positiveOnly: true,
			// Forgetting the /2 and dropping the −x term are the usual slips.
			priority:   []float64{wf * xf * (lf - xf), wf * lf * xf / 2, wf * xf * xf / 2},
			candidates: []float64{wf * lf * lf / 8, m * 2},
		})

		return &Problem{
			Category:   CategorySimpleBeam,
			Pattern:    "udl",
			Difficulty: tier,
			Target:     TargetMx,
			Text: fmt.Sprintf(
				"A simply supported beam of span L = %s m carries a uniformly distributed load w = %s kN/m. Find the bending moment at x = %s m from the left support (kN·m).",
				fnum(lf), fnum(wf), fnum(xf)),
			Params:      Params{SpanM: lf, UDLKNM: wf, PosXM: xf},
			Answer:      m,
			Choices:     choices,
			Explanation: d.String(),
		}
	}

	var d derivation
	d.add("V_A = w·L/2 = %s kN", fnum(wf*lf/2))
	d.add("Q(x) = V_A − w·x = %s − %s×%s = %s kN", fnum(wf*lf/2), fnum(wf), fnum(xf), fnum(q))

	choices := buildChoices(g.rng, q, choiceSpec{
		tol: TolDecimal,
		// Shear is signed: the sign-flipped value is a legitimate
		// misconception, so negatives stay in play.
		priority:   []float64{-q, wf * lf / 2, wf * xf},
		candidates: []float64{wf * (lf - xf), q / 2},
	})

	return &Problem{
		Category:   CategorySimpleBeam,
		Pattern:    "udl",
		Difficulty: tier,
		Target:     TargetQx,
		Text: fmt.Sprintf(
			"A simply supported beam of span L = %s m carries a uniformly distributed load w = %s kN/m. Find the shear force at x = %s m from the left support (kN).",
			fnum(lf), fnum(wf), fnum(xf)),
		Params:      Params{SpanM: lf, UDLKNM: wf, PosXM: xf},
		Answer:      q,
		Choices:     choices,
		Explanation: d.String(),
	}
}
