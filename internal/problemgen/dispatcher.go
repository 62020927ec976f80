package problemgen

// Generator is the problem engine. It owns the numeric pools and the
// random source; everything else is per-call input.
type Generator struct {
	pools *PoolRegistry
	rng   Rand
	gens  map[Category]func(Difficulty) *Problem
}

// New creates a Generator. Pools may be shared between generators; they
// are read-only after their lazy build.
func New(pools *PoolRegistry, rng Rand) *Generator {
	g := &Generator{pools: pools, rng: rng}
	g.gens = map[Category]func(Difficulty) *Problem{
		CategorySimpleBeam:      g.genSimpleBeam,
		CategoryCantilever:      g.genCantilever,
		CategoryOverhang:        g.genOverhang,
		CategoryTrussTriangle:   g.genTrussTriangle,
		CategoryTrussZeroForce:  g.genTrussZeroForce,
		CategoryTrussCantilever: g.genTrussCantilever,
		CategoryTrussPratt:      g.genTrussPratt,
		CategorySection:         g.genSection,
		CategoryBending:         g.genBending,
		CategoryCombined:        g.genCombined,
		CategoryShear:           g.genShear,
		CategoryBuckling:        g.genBuckling,
		CategoryFrame:           g.genFrame,
		CategoryDeflection:      g.genDeflection,
	}
	return g
}

// Accuracy is the per-category answer history the weakness mode consumes.
// It is supplied by the caller (aggregated from the answer log); the
// engine only reads it.
type Accuracy struct {
	Attempted int
	Correct   int
}

// Value returns the accuracy ratio, or 0 for no attempts.
func (a Accuracy) Value() float64 {
	if a.Attempted == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Attempted)
}

// AccuracyMap maps categories to their answer history.
type AccuracyMap map[Category]Accuracy

// Request selects what to generate. The zero value means: mixed
// difficulty, weighted random category.
type Request struct {
	// Category pins the problem family; empty means weighted random.
	Category Category

	// Difficulty selects the tier; empty or Mixed resolves via the
	// 30/50/20 split.
	Difficulty Difficulty

	// Weakness switches category selection to inverse-accuracy weights
	// derived from Stats.
	Weakness bool

	// Stats backs the weakness mode. Ignored unless Weakness is set.
	Stats AccuracyMap
}

// Generate produces one problem. It never fails: empty pools fall back
// to hardcoded tuples and unclean draws are retried a bounded number of
// times, then accepted as-is.
func (g *Generator) Generate(req Request) *Problem {
	tier := g.resolveTier(req.Difficulty)

	cat := req.Category
	if !cat.Valid() {
		if req.Weakness {
			cat = g.pickWeakest(req.Stats)
		} else {
			cat = g.pickWeighted(tier)
		}
	}

	gen, ok := g.gens[cat]
	if !ok {
		gen = g.genSimpleBeam
	}
	return gen(tier)
}

// mixedSplit is the tier resolution for Mixed difficulty: 30% beginner,
// 50% intermediate, 20% advanced.
func (g *Generator) resolveTier(d Difficulty) Difficulty {
	switch d {
	case Beginner, Intermediate, Advanced:
		return d
	}
	r := g.rng.Float64()
	switch {
	case r < 0.30:
		return Beginner
	case r < 0.80:
		return Intermediate
	default:
		return Advanced
	}
}

// weightedCategory is one row of a tier's cumulative-probability table:
// the category wins when the draw falls below threshold and above the
// previous row's threshold.
type weightedCategory struct {
	threshold float64
	category  Category
}

// tierTables holds the hand-tuned category mix per tier. Each table is
// ordered and ends at 1.0; the weights are auditable without executing
// any randomness. Beginner leans on zero-force members and single-step
// formulas; advanced shifts toward frames, overhangs and composite
// sections.
var tierTables = map[Difficulty][]weightedCategory{
	Beginner: {
		{0.14, CategorySimpleBeam},
		{0.26, CategoryCantilever},
		{0.44, CategoryTrussZeroForce},
		{0.54, CategoryTrussTriangle},
		{0.68, CategorySection},
		{0.78, CategoryBending},
		{0.88, CategoryBuckling},
		{1.00, CategoryDeflection},
	},
	Intermediate: {
		{0.10, CategorySimpleBeam},
		{0.18, CategoryCantilever},
		{0.26, CategoryTrussTriangle},
		{0.34, CategoryTrussZeroForce},
		{0.42, CategoryTrussCantilever},
		{0.50, CategoryTrussPratt},
		{0.60, CategorySection},
		{0.68, CategoryBending},
		{0.76, CategoryShear},
		{0.84, CategoryBuckling},
		{0.92, CategoryDeflection},
		{1.00, CategoryOverhang},
	},
	Advanced: {
		{0.10, CategoryOverhang},
		{0.20, CategoryFrame},
		{0.30, CategoryCombined},
		{0.40, CategorySection},
		{0.48, CategoryTrussCantilever},
		{0.56, CategoryTrussPratt},
		{0.64, CategoryShear},
		{0.72, CategoryBuckling},
		{0.80, CategorySimpleBeam},
		{0.88, CategoryDeflection},
		{0.94, CategoryCantilever},
		{1.00, CategoryBending},
	},
}

// pickWeighted walks a tier table with one uniform draw.
func (g *Generator) pickWeighted(tier Difficulty) Category {
	table := tierTables[tier]
	if len(table) == 0 {
		table = tierTables[Intermediate]
	}
	r := g.rng.Float64()
	for _, row := range table {
		if r < row.threshold {
			return row.category
		}
	}
	return table[len(table)-1].category
}

// weaknessWeight returns the selection weight for a category given its
// history: untouched or struggling categories (accuracy < 50%) are
// weighted three times the rest.
func weaknessWeight(a Accuracy) float64 {
	if a.Attempted == 0 || a.Value() < 0.5 {
		return 3
	}
	return 1
}

// pickWeakest replaces the flat tier weighting with inverse-accuracy
// weights over all categories.
func (g *Generator) pickWeakest(stats AccuracyMap) Category {
	cats := AllCategories()
	total := 0.0
	weights := make([]float64, len(cats))
	for i, c := range cats {
		w := weaknessWeight(stats[c])
		weights[i] = w
		total += w
	}
	r := g.rng.Float64() * total
	acc := 0.0
	for i, c := range cats {
		acc += weights[i]
		if r < acc {
			return c
		}
	}
	return cats[len(cats)-1]
}
