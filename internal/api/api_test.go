package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
	"github.com/rie622skt/InfiniteDrill/internal/store"
)

type fakeLog struct {
	stats    problemgen.AccuracyMap
	recorded []bool
	fail     bool
}

func (f *fakeLog) RecordAnswer(_ context.Context, p *problemgen.Problem, correct bool) (*store.Answer, error) {
	if f.fail {
		return nil, errors.New("boom")
	}
	f.recorded = append(f.recorded, correct)
	return &store.Answer{ID: "test-id", Category: p.Category, Correct: correct}, nil
}

func (f *fakeLog) CategoryStats(context.Context) (problemgen.AccuracyMap, error) {
	if f.fail {
		return nil, errors.New("boom")
	}
	return f.stats, nil
}

func newTestServer(log *fakeLog) http.Handler {
	gen := problemgen.New(problemgen.NewPoolRegistry(), problemgen.NewRand(1))
	return NewServer(gen, log).Handler()
}

func TestHealthz(t *testing.T) {
	h := newTestServer(&fakeLog{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProblem(t *testing.T) {
	h := newTestServer(&fakeLog{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/problem?category=simple-beam&difficulty=beginner", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var p problemgen.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, problemgen.CategorySimpleBeam, p.Category)
	require.Equal(t, problemgen.Beginner, p.Difficulty)
	require.Len(t, p.Choices, 4)
}

func TestGetProblemRejectsUnknownCategory(t *testing.T) {
	h := newTestServer(&fakeLog{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/problem?category=nope", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProblemWeakness(t *testing.T) {
	log := &fakeLog{stats: problemgen.AccuracyMap{
		problemgen.CategoryShear: {Attempted: 10, Correct: 1},
	}}
	h := newTestServer(log)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/problem?weakness=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPostAnswer(t *testing.T) {
	log := &fakeLog{}
	h := newTestServer(log)

	body, _ := json.Marshal(map[string]any{
		"category":   "bending",
		"difficulty": "intermediate",
		"target":     "sigma",
		"correct":    true,
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/answers", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, []bool{true}, log.recorded)
}

func TestPostAnswerValidation(t *testing.T) {
	h := newTestServer(&fakeLog{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/answers", bytes.NewBufferString("{not json")))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body, _ := json.Marshal(map[string]any{"category": "nope", "difficulty": "beginner"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/answers", bytes.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStats(t *testing.T) {
	log := &fakeLog{stats: problemgen.AccuracyMap{
		problemgen.CategoryFrame: {Attempted: 4, Correct: 3},
	}}
	h := newTestServer(log)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Portal Frame")
}

func TestStoreFailureIs500(t *testing.T) {
	h := newTestServer(&fakeLog{fail: true})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
