package problemgen

import (
	"fmt"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
)

// genOverhang produces overhang-beam problems. A load inside the main
// span reduces to simple-beam statics; a load on the overhang brings the
// distinct reaction formulas (and an uplift at the far support).
func (g *Generator) genOverhang(tier Difficulty) *Problem {
	if tier == Advanced || g.rng.Float64() < 0.5 {
		return g.overhangTipLoad(tier)
	}
	return g.overhangInSpan(tier)
}

func (g *Generator) overhangInSpan(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Beam())
	ot := pick(g.rng, g.pools.Overhang())
	p, l, a := float64(t.P), float64(t.L), float64(t.A)
	c := float64(ot.C)
	b := l - a
	va, vb, _ := mech.SimpleBeamConcentrated(p, l, a)

	var d derivation
	d.add("The unloaded overhang carries nothing, so the statics reduce to the simple beam A–B.")
	d.add("V_A = P·b/L = %s×%s/%s = %s kN", fnum(p), fnum(b), fnum(l), fnum(va))

	choices := buildChoices(g.rng, va, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// Dividing by the overall length (L+c) is the trap this layout exists for.
		priority:   []float64{p * b / (l + c), vb, p / 2},
		candidates: []float64{p * a / (l + c), p},
	})

	return &Problem{
		Category:   CategoryOverhang,
		Pattern:    "in-span",
		Difficulty: tier,
		Target:     TargetVa,
		Text: fmt.Sprintf(
			"A beam on supports A and B (span L = %s m) has an overhang of c = %s m beyond B. A concentrated load P = %s kN acts inside the span, a = %s m from A. Find the reaction at A (kN).",
			fnum(l), fnum(c), fnum(p), fnum(a)),
		Params:      Params{SpanM: l, OverhangM: c, LoadKN: p, DistAM: a, DistBM: b},
		Answer:      va,
		Choices:     choices,
		Explanation: d.String(),
	}
}

func (g *Generator) overhangTipLoad(tier Difficulty) *Problem {
	t := pick(g.rng, g.pools.Overhang())
	p, l, c := float64(t.P), float64(t.L), float64(t.C)
	va, vb, mb := mech.OverhangLoadOnOverhang(p, l, c)

	switch g.rng.Intn(3) {
	case 0:
		// Reaction at A is a hold-down: report it signed (negative = uplift).
		answer := -va
		var d derivation
		d.add("Moments about B: V_A·L + P·c = 0")
		d.add("V_A = −P·c/L = −%s×%s/%s = %s kN (uplift: A holds the beam down)", fnum(p), fnum(c), fnum(l), fnum(answer))

		choices := buildChoices(g.rng, answer, choiceSpec{
			tol: TolDecimal,
			// The sign flip is the whole point of the sub-case.
			priority:   []float64{va, vb, p / 2},
			candidates: []float64{-vb, p},
		})

		return &Problem{
			Category:   CategoryOverhang,
			Pattern:    "tip-load",
			Difficulty: tier,
			Target:     TargetVa,
			Text: fmt.Sprintf(
				"A beam on supports A and B (span L = %s m) has an overhang of c = %s m beyond B, loaded by P = %s kN at the overhang tip. Find the reaction at A, taking upward as positive (kN).",
				fnum(l), fnum(c), fnum(p)),
			Params:      Params{SpanM: l, OverhangM: c, LoadKN: p},
			Answer:      answer,
			Choices:     choices,
			Explanation: d.String(),
		}

	case 1:
		var d derivation
		d.add("Moments about A: V_B·L = P·(L+c)")
		d.add("V_B = P·(L+c)/L = %s×%s/%s = %s kN", fnum(p), fnum(l+c), fnum(l), fnum(vb))

		choices := buildChoices(g.rng, vb, choiceSpec{
			tol:          TolDecimal,
			positiveOnly: true,
			priority:     []float64{p, p * c / l, p * (l - c) / l},
			candidates:   []float64{p / 2, p + va},
		})

		return &Problem{
			Category:   CategoryOverhang,
			Pattern:    "tip-load",
			Difficulty: tier,
			Target:     TargetVb,
			Text: fmt.Sprintf(
				"A beam on supports A and B (span L = %s m) has an overhang of c = %s m beyond B, loaded by P = %s kN at the overhang tip. Find the reaction at B (kN).",
				fnum(l), fnum(c), fnum(p)),
			Params:      Params{SpanM: l, OverhangM: c, LoadKN: p},
			Answer:      vb,
			Choices:     choices,
			Explanation: d.String(),
		}

	default:
		var d derivation
		d.add("The moment over support B equals the cantilever moment of the overhang:")
		d.add("M_B = P·c = %s×%s = %s kN·m", fnum(p), fnum(c), fnum(mb))

		choices := buildChoices(g.rng, mb, choiceSpec{
			tol:          TolDecimal,
			positiveOnly: true,
			priority:     []float64{p * c / 2, p * l / 4, p * (l + c) / 4},
			candidates:   []float64{p * l, mb * 2},
		})

		return &Problem{
			Category:   CategoryOverhang,
			Pattern:    "tip-load",
			Difficulty: tier,
			Target:     TargetMmax,
			Text: fmt.Sprintf(
				"A beam on supports A and B (span L = %s m) has an overhang of c = %s m beyond B, loaded by P = %s kN at the overhang tip. Find the magnitude of the bending moment over support B (kN·m).",
				fnum(l), fnum(c), fnum(p)),
			Params:      Params{SpanM: l, OverhangM: c, LoadKN: p},
			Answer:      mb,
			Choices:     choices,
			Explanation: d.String(),
		}
	}
}
