package problemgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierTablesWellFormed(t *testing.T) {
	for _, tier := range []Difficulty{Beginner, Intermediate, Advanced} {
		table := tierTables[tier]
		require.NotEmpty(t, table, "tier %s", tier)
		prev := 0.0
		for _, row := range table {
			require.Greater(t, row.threshold, prev, "tier %s row %s", tier, row.category)
			require.True(t, row.category.Valid(), "tier %s row %s", tier, row.category)
			prev = row.threshold
		}
		require.InDelta(t, 1.0, table[len(table)-1].threshold, 1e-12, "tier %s", tier)
	}
}

func TestGeneratePinnedCategory(t *testing.T) {
	g := New(NewPoolRegistry(), NewRand(1))
	for _, cat := range AllCategories() {
		for i := 0; i < 20; i++ {
			p := g.Generate(Request{Category: cat, Difficulty: Mixed})
			require.NotNil(t, p)
			require.Equal(t, cat, p.Category)
		}
	}
}

func TestGeneratePinnedDifficulty(t *testing.T) {
	g := New(NewPoolRegistry(), NewRand(2))
	for _, tier := range []Difficulty{Beginner, Intermediate, Advanced} {
		for i := 0; i < 20; i++ {
			p := g.Generate(Request{Difficulty: tier})
			require.Equal(t, tier, p.Difficulty)
		}
	}
}

func TestGenerateMixedResolvesToConcreteTier(t *testing.T) {
	g := New(NewPoolRegistry(), NewRand(3))
	seen := map[Difficulty]int{}
	for i := 0; i < 300; i++ {
		p := g.Generate(Request{})
		require.Contains(t, []Difficulty{Beginner, Intermediate, Advanced}, p.Difficulty)
		seen[p.Difficulty]++
	}
	// 30/50/20 split: each tier must actually occur over 300 draws.
	require.NotZero(t, seen[Beginner])
	require.NotZero(t, seen[Intermediate])
	require.NotZero(t, seen[Advanced])
	require.Greater(t, seen[Intermediate], seen[Advanced])
}

func TestGenerateUnknownCategoryFallsBack(t *testing.T) {
	g := New(NewPoolRegistry(), NewRand(4))
	p := g.Generate(Request{Category: Category("nonsense"), Difficulty: Beginner})
	require.NotNil(t, p)
	require.True(t, p.Category.Valid())
}

func TestWeaknessWeight(t *testing.T) {
	require.Equal(t, 3.0, weaknessWeight(Accuracy{}))
	require.Equal(t, 3.0, weaknessWeight(Accuracy{Attempted: 10, Correct: 4}))
	require.Equal(t, 1.0, weaknessWeight(Accuracy{Attempted: 10, Correct: 5}))
	require.Equal(t, 1.0, weaknessWeight(Accuracy{Attempted: 10, Correct: 10}))
}

func TestWeaknessModeFavorsWeakCategories(t *testing.T) {
	g := New(NewPoolRegistry(), NewRand(5))

	// Everything strong except one struggling category.
	stats := AccuracyMap{}
	for _, c := range AllCategories() {
		stats[c] = Accuracy{Attempted: 10, Correct: 9}
	}
	stats[CategoryBuckling] = Accuracy{Attempted: 10, Correct: 2}

	counts := map[Category]int{}
	for i := 0; i < 2000; i++ {
		p := g.Generate(Request{Weakness: true, Stats: stats})
		counts[p.Category]++
	}

	// The weak category carries weight 3 against 1 for the other 13, so
	// it should draw roughly 3/16 of the picks. Anything clearly above a
	// flat 1/14 share demonstrates the bias.
	require.Greater(t, counts[CategoryBuckling], 2000/14)
	for _, c := range AllCategories() {
		if c != CategoryBuckling {
			require.Less(t, counts[c], counts[CategoryBuckling], "category %s", c)
		}
	}
}

func TestAccuracyValue(t *testing.T) {
	require.Zero(t, Accuracy{}.Value())
	require.InDelta(t, 0.75, Accuracy{Attempted: 4, Correct: 3}.Value(), 1e-12)
}
