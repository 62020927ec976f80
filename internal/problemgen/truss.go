package problemgen

import (
	"fmt"
	"math"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
)

// Truss problems. All four families share the tension-positive sign
// convention: a positive answer is tension and the explanation says so.

func (g *Generator) genTrussTriangle(tier Difficulty) *Problem {
	p := float64(pick(g.rng, g.pools.TrussLoads()))
	n := mech.TriangleLowerChord(p)

	var d derivation
	d.add("Each support reaction is P/2 = %s kN.", fnum(p/2))
	d.add("At a support joint, the horizontal component of the rafter is balanced by the lower chord alone.")
	d.add("N = P/2 = %s kN (%s)", fnum(n), tensionWord(n))

	// Rounded rafter magnitude: wrong but plausible-looking.
	rafter := math.Round(p/math.Sqrt2*10) / 10

	choices := buildChoices(g.rng, n, choiceSpec{
		tol: TolDecimal,
		// The sign flip and the unhalved load are the classic traps.
		priority:   []float64{-n, p, rafter},
		candidates: []float64{p / 4, 2 * p},
	})

	return &Problem{
		Category:   CategoryTrussTriangle,
		Difficulty: tier,
		Target:     TargetN,
		Text: fmt.Sprintf(
			"A symmetric triangular truss with 45° rafters carries a vertical load P = %s kN at the apex. Find the axial force in the lower chord (kN, tension positive).",
			fnum(p)),
		Params:      Params{LoadKN: p},
		Answer:      n,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Member: "lower-chord"},
	}
}

func (g *Generator) genTrussZeroForce(tier Difficulty) *Problem {
	p := float64(pick(g.rng, g.pools.TrussLoads()))

	var d derivation
	d.add("The joint carrying the member connects only two collinear chord members besides it, and no load acts there.")
	d.add("Equilibrium perpendicular to the chords forces the member to zero.")
	d.add("N = 0 kN (%s)", tensionWord(0))

	choices := buildChoices(g.rng, 0, choiceSpec{
		tol: TolDecimal,
		// Students who miss the inspection shortcut compute something.
		priority:   []float64{p / 2, -p / 2, p},
		candidates: []float64{p / 4, -p},
	})

	return &Problem{
		Category:   CategoryTrussZeroForce,
		Difficulty: tier,
		Target:     TargetN,
		Text: fmt.Sprintf(
			"A truss carries a vertical load P = %s kN at its loaded joint. The highlighted vertical member meets an unloaded joint where the top chord runs straight through. Find its axial force (kN, tension positive).",
			fnum(p)),
		Params:      Params{LoadKN: p},
		Answer:      0,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Member: "vertical-V2"},
	}
}

func (g *Generator) genTrussCantilever(tier Difficulty) *Problem {
	p := float64(pick(g.rng, g.pools.TrussLoads()))
	diag := mech.CantileverTrussDiagonal(p)
	chord := mech.CantileverTrussChord(p)

	if tier == Advanced && g.rng.Float64() < 0.5 {
		var d derivation
		d.add("At the tip joint, the diagonal's vertical component carries P: N_d·(3/5) = P.")
		d.add("Horizontal equilibrium: N_chord = −N_d·(4/5) = −(5P/3)(4/5) = −4P/3")
		d.add("N = −4×%s/3 = %s kN (%s)", fnum(p), fnum(chord), tensionWord(chord))

		choices := buildChoices(g.rng, chord, choiceSpec{
			tol:        TolDecimal,
			priority:   []float64{-chord, diag, -p},
			candidates: []float64{-diag, -p / 2},
		})

		return &Problem{
			Category:   CategoryTrussCantilever,
			Difficulty: tier,
			Target:     TargetN,
			Text: fmt.Sprintf(
				"A cantilever truss with 4 m panels and 3 m height carries P = %s kN at the free end. Find the axial force in the top chord at the tip panel (kN, tension positive).",
				fnum(p)),
			Params:      Params{LoadKN: p},
			Answer:      chord,
			Choices:     choices,
			Explanation: d.String(),
			Display:     Display{Member: "top-chord"},
		}
	}

	var d derivation
	d.add("At the tip joint, only the diagonal has a vertical component (sin θ = 3/5).")
	d.add("N·(3/5) = P, so N = 5P/3 = 5×%s/3 = %s kN (%s)", fnum(p), fnum(diag), tensionWord(diag))

	choices := buildChoices(g.rng, diag, choiceSpec{
		tol: TolDecimal,
		// Missing the geometry factor, or grabbing the chord value.
		priority:   []float64{p, -chord, -diag},
		candidates: []float64{3 * p / 5, p / 2},
	})

	return &Problem{
		Category:   CategoryTrussCantilever,
		Difficulty: tier,
		Target:     TargetN,
		Text: fmt.Sprintf(
			"A cantilever truss with 4 m panels and 3 m height carries P = %s kN at the free end. Find the axial force in the tip diagonal (kN, tension positive).",
			fnum(p)),
		Params:      Params{LoadKN: p},
		Answer:      diag,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Member: "diagonal-D1"},
	}
}

func (g *Generator) genTrussPratt(tier Difficulty) *Problem {
	p := float64(pick(g.rng, g.pools.TrussLoads()))
	diag := mech.PrattDiagonal(p)
	vert := mech.PrattVertical(p)

	if tier == Advanced && g.rng.Float64() < 0.5 {
		var d derivation
		d.add("Cut through the panel: the vertical carries the panel shear directly.")
		d.add("N = −P/2 = %s kN (%s)", fnum(vert), tensionWord(vert))

		choices := buildChoices(g.rng, vert, choiceSpec{
			tol:        TolDecimal,
			priority:   []float64{-vert, diag, -diag},
			candidates: []float64{-p, p},
		})

		return &Problem{
			Category:   CategoryTrussPratt,
			Difficulty: tier,
			Target:     TargetN,
			Text: fmt.Sprintf(
				"A Pratt truss with 4 m panels and 3 m height carries a central load P = %s kN. Find the axial force in the vertical next to the first interior diagonal (kN, tension positive).",
				fnum(p)),
			Params:      Params{LoadKN: p},
			Answer:      vert,
			Choices:     choices,
			Explanation: d.String(),
			Display:     Display{Member: "vertical-V1"},
		}
	}

	var d derivation
	d.add("Cut through the first interior panel; the reaction P/2 must pass through the diagonal's vertical component (sin θ = 3/5).")
	d.add("N·(3/5) = P/2, so N = 5P/6 = 5×%s/6 = %s kN (%s)", fnum(p), fnum(diag), tensionWord(diag))

	choices := buildChoices(g.rng, diag, choiceSpec{
		tol: TolDecimal,
		// Inverted geometry factor and the unresolved half-load.
		priority:   []float64{-diag, p / 2, 6 * p / 5},
		candidates: []float64{p, 3 * p / 10},
	})

	return &Problem{
		Category:   CategoryTrussPratt,
		Difficulty: tier,
		Target:     TargetN,
		Text: fmt.Sprintf(
			"A Pratt truss with 4 m panels and 3 m height carries a central load P = %s kN. Find the axial force in the first interior diagonal (kN, tension positive).",
			fnum(p)),
		Params:      Params{LoadKN: p},
		Answer:      diag,
		Choices:     choices,
		Explanation: d.String(),
		Display:     Display{Member: "diagonal-D1"},
	}
}
