package problemgen

import (
	"fmt"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
)

// genDeflection poses proportionality questions on δ = P·L³/(k·E·I):
// how the deflection scales when one quantity changes, and at advanced
// the cantilever-versus-simple comparison. No absolute deflections are
// ever asked, so E and I never need numeric values.
func (g *Generator) genDeflection(tier Difficulty) *Problem {
	if tier == Advanced && g.rng.Float64() < 0.5 {
		return g.deflectionSupportRatio(tier)
	}
	switch g.rng.Intn(3) {
	case 0:
		return g.deflectionSpanRatio(tier)
	case 1:
		return g.deflectionStiffnessRatio(tier)
	default:
		return g.deflectionLoadRatio(tier)
	}
}

func (g *Generator) deflectionSpanRatio(tier Difficulty) *Problem {
	ratio := mech.DeflectionRatio(1, 2, 1)

	var d derivation
	d.add("δ ∝ P·L³/(E·I), so doubling L multiplies δ by 2³.")
	d.add("δ₂/δ₁ = 2³ = %s", fnum(ratio))

	choices := buildChoices(g.rng, ratio, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// Linear and squared scaling are the standard wrong guesses.
		priority:   []float64{2, 4, 16},
		candidates: []float64{3, 6},
	})

	return &Problem{
		Category:   CategoryDeflection,
		Pattern:    "span",
		Difficulty: tier,
		Target:     TargetDelta,
		Text:       "A simply supported beam carries a central load. If the span is doubled with the load and cross-section unchanged, by what factor does the midspan deflection grow?",
		Answer:     ratio,
		Choices:    choices,
		Explanation: d.String(),
	}
}

func (g *Generator) deflectionStiffnessRatio(tier Difficulty) *Problem {
	ratio := mech.DeflectionRatio(1, 1, 2)

	var d derivation
	d.add("δ ∝ P·L³/(E·I), so doubling I halves δ.")
	d.add("δ₂/δ₁ = 1/2 = %s", fnum(ratio))

	choices := buildChoices(g.rng, ratio, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// Doubling, and the cube applied to the wrong variable.
		priority:   []float64{2, 0.25, 0.125},
		candidates: []float64{1, 8},
	})

	return &Problem{
		Category:   CategoryDeflection,
		Pattern:    "stiffness",
		Difficulty: tier,
		Target:     TargetDelta,
		Text:       "A beam's cross-section is replaced by one with double the moment of inertia, with the load, span and material unchanged. By what factor does the deflection change?",
		Answer:     ratio,
		Choices:    choices,
		Explanation: d.String(),
	}
}

func (g *Generator) deflectionLoadRatio(tier Difficulty) *Problem {
	k := float64(2 + g.rng.Intn(2)) // double or triple the load
	ratio := mech.DeflectionRatio(k, 1, 1)

	var d derivation
	d.add("δ ∝ P·L³/(E·I) is linear in the load.")
	d.add("δ₂/δ₁ = %s", fnum(ratio))

	choices := buildChoices(g.rng, ratio, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		priority:     []float64{k * k, k * k * k, 1},
		candidates:   []float64{k / 2, k + 1},
	})

	word := "doubled"
	if k == 3 {
		word = "tripled"
	}

	return &Problem{
		Category:   CategoryDeflection,
		Pattern:    "load",
		Difficulty: tier,
		Target:     TargetDelta,
		Text:       fmt.Sprintf("The load on a beam is %s with the span and cross-section unchanged. By what factor does the deflection change?", word),
		Answer:     ratio,
		Choices:    choices,
		Explanation: d.String(),
	}
}

func (g *Generator) deflectionSupportRatio(tier Difficulty) *Problem {
	ratio := mech.CantileverToSimpleRatio()

	var d derivation
	d.add("Cantilever with tip load: δ = P·L³/(3EI).")
	d.add("Simple beam with central load: δ = P·L³/(48EI).")
	d.add("Ratio = 48/3 = %s", fnum(ratio))

	choices := buildChoices(g.rng, ratio, choiceSpec{
		tol:          TolDecimal,
		positiveOnly: true,
		// Halving one of the coefficients gives the common wrong 4 and 8.
		priority:   []float64{4, 8, 2},
		candidates: []float64{48, 3},
	})

	return &Problem{
		Category:   CategoryDeflection,
		Pattern:    "support",
		Difficulty: tier,
		Target:     TargetDelta,
		Text:       "A cantilever with a tip load and a simply supported beam with the same central load share the same span and cross-section. What is the ratio of the cantilever's tip deflection to the simple beam's midspan deflection?",
		Answer:     ratio,
		Choices:    choices,
		Explanation: d.String(),
	}
}
