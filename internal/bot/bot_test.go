package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

func sampleProblem() *problemgen.Problem {
	g := problemgen.New(problemgen.NewPoolRegistry(), problemgen.NewRand(1))
	return g.Generate(problemgen.Request{
		Category:   problemgen.CategorySimpleBeam,
		Difficulty: problemgen.Beginner,
	})
}

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data   string
		want   int
		wantOK bool
	}{
		{"answer:0", 0, true},
		{"answer:3", 3, true},
		{"answer:x", 0, false},
		{"other:1", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCallback(tt.data)
		require.Equal(t, tt.wantOK, ok, tt.data)
		if ok {
			require.Equal(t, tt.want, got, tt.data)
		}
	}
}

func TestChoiceKeyboard(t *testing.T) {
	p := sampleProblem()
	kb := choiceKeyboard(p)
	require.Len(t, kb.InlineKeyboard, 4)
	for i, row := range kb.InlineKeyboard {
		require.Len(t, row, 1)
		idx, ok := ParseCallback(*row[0].CallbackData)
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
	require.True(t, strings.HasPrefix(kb.InlineKeyboard[0][0].Text, "A) "))
}

func TestFormatProblem(t *testing.T) {
	p := sampleProblem()
	out := FormatProblem(p)
	require.Contains(t, out, "Simple Beam")
	require.Contains(t, out, p.Text)
}

func TestFormatResult(t *testing.T) {
	p := sampleProblem()
	correctIdx := p.CorrectIndex()

	win := FormatResult(p, correctIdx, true)
	require.Contains(t, win, "Correct!")
	require.Contains(t, win, p.Explanation)

	wrongIdx := (correctIdx + 1) % len(p.Choices)
	lose := FormatResult(p, wrongIdx, false)
	require.Contains(t, lose, "Not quite")
	require.Contains(t, lose, p.Explanation)
}
