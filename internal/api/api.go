// Package api exposes the drill engine over HTTP for web front ends.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
	"github.com/rie622skt/InfiniteDrill/internal/stats"
	"github.com/rie622skt/InfiniteDrill/internal/store"
)

// AnswerLog is the subset of the store the API needs; *store.Store
// satisfies it.
type AnswerLog interface {
	RecordAnswer(ctx context.Context, p *problemgen.Problem, correct bool) (*store.Answer, error)
	CategoryStats(ctx context.Context) (problemgen.AccuracyMap, error)
}

// Server wires the problem engine and the answer log into an HTTP
// handler.
type Server struct {
	gen *problemgen.Generator
	log AnswerLog
}

// NewServer creates a Server.
func NewServer(gen *problemgen.Generator, log AnswerLog) *Server {
	return &Server{gen: gen, log: log}
}

// Handler builds the chi router with the CORS and logging middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/problem", s.handleProblem)
		r.Post("/answers", s.handleAnswer)
		r.Get("/stats", s.handleStats)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleProblem serves one generated problem. Query parameters:
// category (optional), difficulty (optional, defaults to mixed) and
// weakness=1 to bias toward struggling categories.
func (s *Server) handleProblem(w http.ResponseWriter, r *http.Request) {
	req := problemgen.Request{
		Category:   problemgen.Category(r.URL.Query().Get("category")),
		Difficulty: problemgen.Difficulty(r.URL.Query().Get("difficulty")),
	}
	if req.Category != "" && !req.Category.Valid() {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if req.Difficulty != "" && !req.Difficulty.Valid() {
		writeError(w, http.StatusBadRequest, "unknown difficulty")
		return
	}
	if r.URL.Query().Get("weakness") == "1" {
		m, err := s.log.CategoryStats(r.Context())
		if err != nil {
			log.Printf("load stats for weakness mode: %v", err)
			writeError(w, http.StatusInternalServerError, "stats unavailable")
			return
		}
		req.Weakness = true
		req.Stats = m
	}

	writeJSON(w, http.StatusOK, s.gen.Generate(req))
}

// answerRequest is the POST /answers payload: the identifying fields of
// the answered problem plus the outcome.
type answerRequest struct {
	Category   problemgen.Category   `json:"category"`
	Pattern    string                `json:"pattern"`
	Difficulty problemgen.Difficulty `json:"difficulty"`
	Target     problemgen.Target     `json:"target"`
	Correct    bool                  `json:"correct"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !req.Category.Valid() {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if !req.Difficulty.Valid() {
		writeError(w, http.StatusBadRequest, "unknown difficulty")
		return
	}

	p := &problemgen.Problem{
		Category:   req.Category,
		Pattern:    req.Pattern,
		Difficulty: req.Difficulty,
		Target:     req.Target,
	}
	a, err := s.log.RecordAnswer(r.Context(), p, req.Correct)
	if err != nil {
		log.Printf("record answer: %v", err)
		writeError(w, http.StatusInternalServerError, "could not record answer")
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	m, err := s.log.CategoryStats(r.Context())
	if err != nil {
		log.Printf("load stats: %v", err)
		writeError(w, http.StatusInternalServerError, "stats unavailable")
		return
	}
	writeJSON(w, http.StatusOK, stats.Build(m))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
