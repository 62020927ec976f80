package drill

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
	"github.com/rie622skt/InfiniteDrill/internal/store"
)

type mockRecorder struct {
	answers []bool
}

func (m *mockRecorder) RecordAnswer(_ context.Context, p *problemgen.Problem, correct bool) (*store.Answer, error) {
	m.answers = append(m.answers, correct)
	return &store.Answer{ID: "x", Category: p.Category, Correct: correct}, nil
}

func (m *mockRecorder) CategoryStats(context.Context) (problemgen.AccuracyMap, error) {
	return problemgen.AccuracyMap{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestModel(rec Recorder, opts Options) Model {
	gen := problemgen.New(problemgen.NewPoolRegistry(), problemgen.NewRand(1))
	return New(gen, rec, nil, opts)
}

func TestNewLoadsFirstProblem(t *testing.T) {
	m := newTestModel(&mockRecorder{}, Options{Count: 3})
	require.NotNil(t, m.current)
	require.Equal(t, phaseAnswering, m.phase)
	require.Len(t, m.mc.Options, 4)
}

func TestDefaultCount(t *testing.T) {
	m := newTestModel(&mockRecorder{}, Options{})
	require.Equal(t, 10, m.opts.Count)
}

func TestPinnedCategoryFlowsThrough(t *testing.T) {
	m := newTestModel(&mockRecorder{}, Options{Category: problemgen.CategoryBuckling, Count: 2})
	require.Equal(t, problemgen.CategoryBuckling, m.current.Category)
}

func TestAnswerRevealsAndRecords(t *testing.T) {
	rec := &mockRecorder{}
	m := newTestModel(rec, Options{Count: 2})

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	model := next.(Model)
	require.Equal(t, phaseRevealed, model.phase)
	require.NotNil(t, cmd)

	// Run the batched commands to flush the record message.
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}
	require.Len(t, rec.answers, 1)
}

func TestQuickSelectLetterSubmits(t *testing.T) {
	m := newTestModel(&mockRecorder{}, Options{Count: 1})
	next, _ := m.Update(keyPress('c'))
	model := next.(Model)
	require.Equal(t, phaseRevealed, model.phase)
	require.Equal(t, 2, model.mc.ChosenIndex)
}

func TestAdvanceAndFinish(t *testing.T) {
	m := newTestModel(&mockRecorder{}, Options{Count: 2})

	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	model := next.(Model)
	next, _ = model.Update(keyPress('n'))
	model = next.(Model)
	require.Equal(t, phaseAnswering, model.phase)
	require.Equal(t, 1, model.index)

	next, _ = model.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	model = next.(Model)
	next, _ = model.Update(keyPress('n'))
	model = next.(Model)
	require.Equal(t, phaseDone, model.phase)
}

func TestCorrectAnswerCounts(t *testing.T) {
	m := newTestModel(&mockRecorder{}, Options{Count: 1})
	// Navigate to the correct option before submitting.
	for m.mc.Selected < m.mc.CorrectIndex {
		m.mc, _ = m.mc.Update(keyPress('j'))
	}
	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	model := next.(Model)
	require.Equal(t, 1, model.correct)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&mockRecorder{}, Options{Count: 1})
	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
}
