package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

func TestBuildCoversAllCategories(t *testing.T) {
	r := Build(problemgen.AccuracyMap{})
	require.Len(t, r.Rows, len(problemgen.AllCategories()))
	require.Zero(t, r.TotalAttempted)
	require.Zero(t, r.TotalAccuracy())
}

func TestBuildTotals(t *testing.T) {
	r := Build(problemgen.AccuracyMap{
		problemgen.CategorySimpleBeam: {Attempted: 10, Correct: 7},
		problemgen.CategoryBuckling:   {Attempted: 5, Correct: 1},
	})
	require.Equal(t, 15, r.TotalAttempted)
	require.Equal(t, 8, r.TotalCorrect)
	require.InDelta(t, 8.0/15.0, r.TotalAccuracy(), 1e-12)
}

func TestWeakest(t *testing.T) {
	r := Build(problemgen.AccuracyMap{
		problemgen.CategorySimpleBeam: {Attempted: 10, Correct: 9},
		problemgen.CategoryShear:      {Attempted: 4, Correct: 1},
		problemgen.CategoryFrame:      {Attempted: 6, Correct: 3},
	})
	require.Equal(t, problemgen.CategoryShear, r.Weakest())

	empty := Build(problemgen.AccuracyMap{})
	require.Empty(t, empty.Weakest())
}

func TestFormatShape(t *testing.T) {
	r := Build(problemgen.AccuracyMap{
		problemgen.CategoryBending: {Attempted: 2, Correct: 2},
	})
	out := r.Format()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, one row per category, total line.
	require.Len(t, lines, len(problemgen.AllCategories())+2)
	require.Contains(t, out, "Bending Stress")
	require.Contains(t, out, "100%")
	// Unattempted categories show a dash instead of a percentage.
	require.Contains(t, out, "-")
}
