// Package drill implements the interactive terminal drill session.
package drill

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
	"github.com/rie622skt/InfiniteDrill/internal/store"
	"github.com/rie622skt/InfiniteDrill/internal/ui/components"
	"github.com/rie622skt/InfiniteDrill/internal/ui/theme"
)

// Recorder is the slice of the store the session needs; *store.Store
// satisfies it.
type Recorder interface {
	RecordAnswer(ctx context.Context, p *problemgen.Problem, correct bool) (*store.Answer, error)
	CategoryStats(ctx context.Context) (problemgen.AccuracyMap, error)
}

// Coach supplies an optional remedial tip after a wrong answer.
type Coach interface {
	Tip(ctx context.Context, p *problemgen.Problem, chosen float64) (string, error)
}

type phase int

const (
	phaseAnswering phase = iota
	phaseRevealed
	phaseDone
)

// Options configures a session.
type Options struct {
	Category   problemgen.Category   // empty for weighted random
	Difficulty problemgen.Difficulty // empty for mixed
	Weakness   bool
	Count      int // number of questions; 0 means 10
}

// Model is the Bubble Tea model for one drill session.
type Model struct {
	gen   *problemgen.Generator
	rec   Recorder
	coach Coach
	opts  Options

	phase   phase
	index   int
	correct int
	current *problemgen.Problem
	mc      components.MultiChoice
	tip     string
	errMsg  string
	width   int
}

type answerRecordedMsg struct{ err error }
type tipMsg struct{ tip string }

// New creates a session model. coach may be nil.
func New(gen *problemgen.Generator, rec Recorder, coach Coach, opts Options) Model {
	if opts.Count <= 0 {
		opts.Count = 10
	}
	m := Model{gen: gen, rec: rec, coach: coach, opts: opts}
	m.loadNext()
	return m
}

// loadNext generates the next problem and resets the choice component.
func (m *Model) loadNext() {
	req := problemgen.Request{
		Category:   m.opts.Category,
		Difficulty: m.opts.Difficulty,
	}
	if m.opts.Weakness {
		if stats, err := m.rec.CategoryStats(context.Background()); err == nil {
			req.Weakness = true
			req.Stats = stats
		}
	}
	m.current = m.gen.Generate(req)
	m.mc = components.NewMultiChoice(m.current.Text, formatChoices(m.current), m.current.CorrectIndex())
	m.phase = phaseAnswering
	m.tip = ""
	m.errMsg = ""
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case answerRecordedMsg:
		if msg.err != nil {
			m.errMsg = "could not save this answer"
		}
		return m, nil

	case tipMsg:
		m.tip = msg.tip
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseAnswering:
		m.mc, _ = m.mc.Update(msg)
		if !m.mc.Submitted {
			return m, nil
		}
		m.phase = phaseRevealed
		if m.mc.IsCorrect() {
			m.correct++
		}
		return m, tea.Batch(m.recordAnswer(), m.fetchTip())

	case phaseRevealed:
		switch msg.String() {
		case "enter", "n", " ":
			m.index++
			if m.index >= m.opts.Count {
				m.phase = phaseDone
				return m, nil
			}
			m.loadNext()
		}
		return m, nil

	default:
		return m, tea.Quit
	}
}

// recordAnswer persists the outcome off the update loop.
func (m Model) recordAnswer() tea.Cmd {
	p, correct := m.current, m.mc.IsCorrect()
	return func() tea.Msg {
		_, err := m.rec.RecordAnswer(context.Background(), p, correct)
		return answerRecordedMsg{err: err}
	}
}

// fetchTip asks the coach for a remedial hint after a wrong answer.
func (m Model) fetchTip() tea.Cmd {
	if m.coach == nil || m.mc.IsCorrect() {
		return nil
	}
	p := m.current
	chosen := p.Choices[m.mc.ChosenIndex]
	coach := m.coach
	return func() tea.Msg {
		tip, err := coach.Tip(context.Background(), p, chosen)
		if err != nil {
			return tipMsg{}
		}
		return tipMsg{tip: tip}
	}
}

func (m Model) View() tea.View {
	var s string
	switch m.phase {
	case phaseDone:
		s = m.viewSummary()
	default:
		s = m.viewQuestion()
	}
	v := tea.NewView(s)
	v.AltScreen = true
	return v
}

func (m Model) viewQuestion() string {
	header := theme.Title.Render(m.current.Category.DisplayName()) +
		theme.Subtitle.Render(fmt.Sprintf("  %d/%d · %s", m.index+1, m.opts.Count, m.current.Difficulty)) +
		"\n" + m.progressBar()

	body := m.mc.View()

	var footer string
	switch m.phase {
	case phaseAnswering:
		footer = theme.Hint.Render("↑/↓ select · enter or a-d answer · q quit")
	case phaseRevealed:
		if m.mc.IsCorrect() {
			footer = theme.Correct.Render("Correct!") + "\n\n"
		} else {
			footer = theme.Incorrect.Render("Not quite.") + "\n\n"
		}
		footer += theme.Body.Render(m.current.Explanation) + "\n"
		if m.tip != "" {
			footer += "\n" + theme.Hint.Render("Tip: "+m.tip) + "\n"
		}
		if m.errMsg != "" {
			footer += "\n" + theme.Incorrect.Render(m.errMsg) + "\n"
		}
		footer += "\n" + theme.Hint.Render("enter next · q quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		theme.Card.Render(body),
		"",
		footer,
	)
}

// progressBar renders the session position as a fixed-width bar.
func (m Model) progressBar() string {
	const width = 20
	filled := 0
	if m.opts.Count > 0 {
		filled = m.index * width / m.opts.Count
	}
	if filled > width {
		filled = width
	}
	bar := theme.Selected.Render(strings.Repeat("█", filled)) +
		theme.Subtitle.Render(strings.Repeat("░", width-filled))
	return bar
}

func (m Model) viewSummary() string {
	pct := 0
	if m.opts.Count > 0 {
		pct = m.correct * 100 / m.opts.Count
	}
	s := theme.Title.Render("Session complete") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("Score: %d/%d (%d%%)", m.correct, m.opts.Count, pct)) + "\n\n" +
		theme.Hint.Render("press any key to exit")
	return theme.Card.Render(s)
}

// formatChoices renders the numeric options with the unit of the asked
// quantity.
func formatChoices(p *problemgen.Problem) []string {
	unit := unitFor(p.Target)
	out := make([]string, len(p.Choices))
	for i, c := range p.Choices {
		v := strconv.FormatFloat(c, 'f', -1, 64)
		if unit == "" {
			out[i] = v
		} else {
			out[i] = v + " " + unit
		}
	}
	return out
}

// unitFor maps a target quantity to its display unit.
func unitFor(t problemgen.Target) string {
	switch t {
	case problemgen.TargetMmax, problemgen.TargetMx, problemgen.TargetMfix:
		return "kN·m"
	case problemgen.TargetQx, problemgen.TargetVa, problemgen.TargetVb, problemgen.TargetN, problemgen.TargetH:
		return "kN"
	case problemgen.TargetZ:
		return "mm³"
	case problemgen.TargetI:
		return "mm⁴"
	case problemgen.TargetA:
		return "mm²"
	case problemgen.TargetXg, problemgen.TargetYg, problemgen.TargetEmax:
		return "mm"
	case problemgen.TargetSigma, problemgen.TargetSigmaMax, problemgen.TargetTau:
		return "N/mm²"
	case problemgen.TargetLk:
		return "m"
	default:
		return "" // dimensionless ratios
	}
}
