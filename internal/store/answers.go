package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

// Answer is one logged attempt.
type Answer struct {
	ID         string
	Category   problemgen.Category
	Pattern    string
	Difficulty problemgen.Difficulty
	Target     problemgen.Target
	Correct    bool
	AnsweredAt time.Time
}

// RecordAnswer logs one attempt against a generated problem.
func (s *Store) RecordAnswer(ctx context.Context, p *problemgen.Problem, correct bool) (*Answer, error) {
	a := &Answer{
		ID:         uuid.NewString(),
		Category:   p.Category,
		Pattern:    p.Pattern,
		Difficulty: p.Difficulty,
		Target:     p.Target,
		Correct:    correct,
		AnsweredAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO answers (id, category, pattern, difficulty, target, correct, answered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`),
		a.ID, string(a.Category), a.Pattern, string(a.Difficulty), string(a.Target), a.Correct, a.AnsweredAt)
	if err != nil {
		return nil, fmt.Errorf("insert answer: %w", err)
	}
	return a, nil
}

// CategoryStats aggregates the answer log into the per-category history
// the weakness mode and the stats views consume.
func (s *Store) CategoryStats(ctx context.Context) (problemgen.AccuracyMap, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*), SUM(CASE WHEN correct THEN 1 ELSE 0 END)
		 FROM answers GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	out := problemgen.AccuracyMap{}
	for rows.Next() {
		var cat string
		var attempted, correct int
		if err := rows.Scan(&cat, &attempted, &correct); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		out[problemgen.Category(cat)] = problemgen.Accuracy{Attempted: attempted, Correct: correct}
	}
	return out, rows.Err()
}

// RecentAnswers returns the latest attempts, newest first.
func (s *Store) RecentAnswers(ctx context.Context, limit int) ([]Answer, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT id, category, pattern, difficulty, target, correct, answered_at
		 FROM answers ORDER BY answered_at DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []Answer
	for rows.Next() {
		var a Answer
		var cat, diff, target string
		if err := rows.Scan(&a.ID, &cat, &a.Pattern, &diff, &target, &a.Correct, &a.AnsweredAt); err != nil {
			return nil, fmt.Errorf("scan answer row: %w", err)
		}
		a.Category = problemgen.Category(cat)
		a.Difficulty = problemgen.Difficulty(diff)
		a.Target = problemgen.Target(target)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Reset deletes the entire answer log.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM answers`); err != nil {
		return fmt.Errorf("reset answers: %w", err)
	}
	return nil
}

// rebind rewrites ?-style placeholders to the $n form Postgres expects.
// SQLite queries pass through untouched.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
