package problemgen

import (
	"fmt"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
)

// genBuckling asks for the effective length l_k = γ·L of a column, or at
// advanced the Euler-load ratio against the pinned-pinned baseline. The
// ratio variant only uses conditions whose 1/γ² is a clean value, so
// fix-pin (1/0.49) appears in length problems only.
func (g *Generator) genBuckling(tier Difficulty) *Problem {
	if tier == Advanced && g.rng.Float64() < 0.5 {
		return g.bucklingLoadRatio(tier)
	}
	return g.bucklingLength(tier)
}

func (g *Generator) bucklingLength(tier Difficulty) *Problem {
	conds := mech.AllEndConditions()
	if tier == Beginner {
		// Beginner sticks to the two memorable halving/doubling cases.
		conds = []mech.EndCondition{mech.FixFix, mech.FixFree}
	}
	cond := conds[g.rng.Intn(len(conds))]
	l := float64(pick(g.rng, g.pools.Spans()))
	gamma := mech.EffectiveLengthFactor(cond)
	lk := mech.EffectiveLength(cond, l)

	var d derivation
	d.add("A column %s has γ = %s.", mech.EndConditionLabel(cond), fnum(gamma))
	d.add("l_k = γ·L = %s×%s = %s m", fnum(gamma), fnum(l), fnum(lk))

	// Every other condition's l_k is a ready-made distractor.
	var others []float64
	for _, c := range mech.AllEndConditions() {
		if c != cond {
			others = append(others, mech.EffectiveLength(c, l))
		}
	}

	choices := buildChoices(g.rng, lk, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		priority:     others,
		candidates:   []float64{l / gamma, lk / 2},
	})

	return &Problem{
		Category:   CategoryBuckling,
		Pattern:    "length",
		Difficulty: tier,
		Target:     TargetLk,
		Text: fmt.Sprintf(
			"A column of length L = %s m is %s. Find its effective buckling length l_k (m).",
			fnum(l), mech.EndConditionLabel(cond)),
		Params:      Params{ColumnHM: l},
		Answer:      lk,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Support: cond},
	}
}

func (g *Generator) bucklingLoadRatio(tier Difficulty) *Problem {
	// 1/γ² is clean for fix-fix (4) and fix-free (0.25) only.
	conds := []mech.EndCondition{mech.FixFix, mech.FixFree}
	cond := conds[g.rng.Intn(len(conds))]
	gamma := mech.EffectiveLengthFactor(cond)
	ratio := mech.LoadRatio(cond)

	var d derivation
	d.add("Euler: P_cr = π²EI/l_k² with l_k = γ·L, so P/P_pin = 1/γ².")
	d.add("γ = %s, ratio = 1/%s² = %s", fnum(gamma), fnum(gamma), fnum(ratio))

	choices := buildChoices(g.rng, ratio, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// Quoting γ itself, its inverse, or forgetting the square.
		priority:   []float64{gamma, 1 / gamma, gamma * gamma},
		candidates: []float64{2 * ratio, ratio / 2},
	})

	return &Problem{
		Category:   CategoryBuckling,
		Pattern:    "load-ratio",
		Difficulty: tier,
		Target:     TargetLoadRatio,
		Text: fmt.Sprintf(
			"Two identical columns differ only in their supports: one is pinned at both ends, the other is %s. By Euler buckling, what is the ratio of the second column's critical load to the first's?",
			mech.EndConditionLabel(cond)),
		Answer:      ratio,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Support: cond},
	}
}
