package problemgen

import "sort"

// choiceSpec describes how to build the 4-option choice list for one
// problem.
type choiceSpec struct {
	// tol is the collision tolerance: candidates this close to the
	// answer (or to each other) are rejected as duplicates.
	tol float64

	// positiveOnly discards non-positive candidates. Set for magnitude
	// quantities (stresses, section properties); left false for signed
	// quantities (member forces, shear with direction).
	positiveOnly bool

	// priority lists the pedagogically most common misconception values,
	// drained in order before anything is drawn at random.
	priority []float64

	// candidates is the remaining misconception pool, sampled uniformly
	// without replacement.
	candidates []float64
}

// padOffsets is the fallback sequence for padding when the misconception
// pool runs dry, applied as answer±offset in order.
var padOffsets = []float64{1, 2, 5, 10, 20}

// smallPadOffsets replaces padOffsets when |answer| < 2, where ±1 jumps
// would dwarf the answer itself (buckling ratios, kern limits in cm).
var smallPadOffsets = []float64{0.1, 0.2, 0.5, 1}

// buildChoices assembles the displayed choice list: the correct answer
// plus exactly 3 distinct wrong options, sorted ascending.
//
// Selection order: priority misconceptions first (in listed order), then
// uniform draws from the candidate pool, then deterministic offset
// padding. The result always has length 4.
func buildChoices(rng Rand, answer float64, spec choiceSpec) []float64 {
	distractors := synthesizeDistractors(rng, answer, spec)
	choices := append(distractors, answer)
	sort.Float64s(choices)
	return choices
}

// synthesizeDistractors returns exactly 3 wrong options for the answer.
func synthesizeDistractors(rng Rand, answer float64, spec choiceSpec) []float64 {
	var chosen []float64

	usable := func(v float64) bool {
		if spec.positiveOnly && v <= 0 {
			return false
		}
		if abs(v-answer) <= spec.tol {
			return false
		}
		for _, c := range chosen {
			if abs(v-c) <= spec.tol {
				return false
			}
		}
		return true
	}

	for _, v := range spec.priority {
		if len(chosen) == 3 {
			return chosen
		}
		if usable(v) {
			chosen = append(chosen, v)
		}
	}

	// Uniform draws without replacement from the remaining pool.
	pool := append([]float64(nil), spec.candidates...)
	for len(chosen) < 3 && len(pool) > 0 {
		i := rng.Intn(len(pool))
		v := pool[i]
		pool = append(pool[:i], pool[i+1:]...)
		if usable(v) {
			chosen = append(chosen, v)
		}
	}

	// Offset padding. The combined ± sequence always has room for the
	// domains in play, so the loop below is effectively total.
	offsets := padOffsets
	if abs(answer) < 2 {
		offsets = smallPadOffsets
	}
	for _, off := range offsets {
		if len(chosen) == 3 {
			break
		}
		for _, v := range []float64{answer + off, answer - off} {
			if len(chosen) == 3 {
				break
			}
			if usable(v) {
				chosen = append(chosen, v)
			}
		}
	}

	return chosen
}
