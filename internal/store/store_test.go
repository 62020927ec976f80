package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleProblem(cat problemgen.Category) *problemgen.Problem {
	g := problemgen.New(problemgen.NewPoolRegistry(), problemgen.NewRand(1))
	return g.Generate(problemgen.Request{Category: cat, Difficulty: problemgen.Beginner})
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "whatever")
	require.Error(t, err)
}

func TestRecordAndAggregate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := sampleProblem(problemgen.CategorySimpleBeam)
	for i := 0; i < 3; i++ {
		_, err := s.RecordAnswer(ctx, p, i < 2)
		require.NoError(t, err)
	}
	q := sampleProblem(problemgen.CategoryBuckling)
	_, err := s.RecordAnswer(ctx, q, false)
	require.NoError(t, err)

	stats, err := s.CategoryStats(ctx)
	require.NoError(t, err)
	require.Equal(t, problemgen.Accuracy{Attempted: 3, Correct: 2}, stats[problemgen.CategorySimpleBeam])
	require.Equal(t, problemgen.Accuracy{Attempted: 1, Correct: 0}, stats[problemgen.CategoryBuckling])
}

func TestRecentAnswersOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := sampleProblem(problemgen.CategoryCantilever)
	for i := 0; i < 5; i++ {
		_, err := s.RecordAnswer(ctx, p, true)
		require.NoError(t, err)
	}

	got, err := s.RecentAnswers(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		require.False(t, got[i].AnsweredAt.After(got[i-1].AnsweredAt))
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.RecordAnswer(ctx, sampleProblem(problemgen.CategoryFrame), true)
	require.NoError(t, err)
	require.NoError(t, s.Reset(ctx))

	stats, err := s.CategoryStats(ctx)
	require.NoError(t, err)
	require.Empty(t, stats)
}

func TestRebindPostgres(t *testing.T) {
	s := &Store{driver: DriverPostgres}
	got := s.rebind("INSERT INTO t (a, b) VALUES (?, ?)")
	require.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2)", got)

	lite := &Store{driver: DriverSQLite}
	require.Equal(t, "SELECT ?", lite.rebind("SELECT ?"))
}
