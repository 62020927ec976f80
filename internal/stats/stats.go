// Package stats turns the raw answer log aggregates into the report
// rows the CLI, TUI and bot render.
package stats

import (
	"fmt"
	"strings"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

// Row is one category line of the report.
type Row struct {
	Category  problemgen.Category
	Label     string
	Attempted int
	Correct   int
	Accuracy  float64 // 0..1, 0 when unattempted
}

// Report is the full accuracy summary in category display order.
type Report struct {
	Rows           []Row
	TotalAttempted int
	TotalCorrect   int
}

// Build assembles a Report from the per-category accuracy map. Every
// category appears even with zero attempts, so the table shape is
// stable.
func Build(m problemgen.AccuracyMap) Report {
	var r Report
	for _, c := range problemgen.AllCategories() {
		a := m[c]
		r.Rows = append(r.Rows, Row{
			Category:  c,
			Label:     c.DisplayName(),
			Attempted: a.Attempted,
			Correct:   a.Correct,
			Accuracy:  a.Value(),
		})
		r.TotalAttempted += a.Attempted
		r.TotalCorrect += a.Correct
	}
	return r
}

// TotalAccuracy returns the overall ratio, or 0 with no attempts.
func (r Report) TotalAccuracy() float64 {
	if r.TotalAttempted == 0 {
		return 0
	}
	return float64(r.TotalCorrect) / float64(r.TotalAttempted)
}

// Weakest returns the attempted category with the lowest accuracy, or
// "" when nothing has been attempted yet.
func (r Report) Weakest() problemgen.Category {
	var worst problemgen.Category
	worstAcc := 2.0
	for _, row := range r.Rows {
		if row.Attempted == 0 {
			continue
		}
		if row.Accuracy < worstAcc {
			worst, worstAcc = row.Category, row.Accuracy
		}
	}
	return worst
}

// Format renders the report as an aligned text table.
func (r Report) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-22s %9s %9s %9s\n", "Category", "Attempted", "Correct", "Accuracy")
	for _, row := range r.Rows {
		acc := "-"
		if row.Attempted > 0 {
			acc = fmt.Sprintf("%.0f%%", row.Accuracy*100)
		}
		fmt.Fprintf(&b, "%-22s %9d %9d %9s\n", row.Label, row.Attempted, row.Correct, acc)
	}
	fmt.Fprintf(&b, "%-22s %9d %9d %8.0f%%\n", "Total", r.TotalAttempted, r.TotalCorrect, r.TotalAccuracy()*100)
	return b.String()
}
