package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/fasim/internal/presentation/graph"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodySize bounds request bodies (1 MiB).
const maxBodySize = 1 << 20

// Simulator is the part of a fasim.Machine the HTTP adapter needs.
type Simulator interface {
	Table() *domain.Table
	Simulate(ctx context.Context, start string, inputs ...string) domain.Trajectory
	ReplayLines(ctx context.Context, source string, lines []string) ([]domain.Result, error)
}

// Server exposes a Simulator as a JSON API.
type Server struct {
	Simulator Simulator
	logger    *slog.Logger
	metrics   http.Handler
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// StateView is one row of the automaton listing.
type StateView struct {
	Name        string            `json:"name"`
	Transitions map[string]string `json:"transitions"`
}

// AutomatonResponse lists every state, sorted by name.
type AutomatonResponse struct {
	States []StateView `json:"states"`
}

// SimulateRequest is the body of POST /simulate.
type SimulateRequest struct {
	Start  string   `json:"start"`
	Inputs []string `json:"inputs"`
}

// ReplayRequest is the body of POST /replay: simulation description lines.
type ReplayRequest struct {
	Lines []string `json:"lines"`
}

// ReplayResult is one entry of the POST /replay response.
type ReplayResult struct {
	Line        int                   `json:"line"`
	Description string                `json:"description"`
	Trajectory  domain.TrajectoryView `json:"trajectory"`
}

// NewHandler creates a new HTTP handler for the simulator.
func NewHandler(sim Simulator, opts ...Option) http.Handler {
	s := &Server{
		Simulator: sim,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/automaton", s.Automaton)
	r.Get("/automaton/mermaid", s.Mermaid)
	r.Post("/simulate", s.Simulate)
	r.Post("/replay", s.Replay)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Automaton handles GET /automaton.
func (s *Server) Automaton(w http.ResponseWriter, r *http.Request) {
	table := s.Simulator.Table()
	resp := AutomatonResponse{States: make([]StateView, 0, table.Len())}
	for _, state := range table.States() {
		resp.States = append(resp.States, StateView{Name: state, Transitions: table.Transitions(state)})
	}
	s.writeJSON(w, resp)
}

// Mermaid handles GET /automaton/mermaid.
func (s *Server) Mermaid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(s.Simulator.Table(), nil))
}

// Simulate handles POST /simulate.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var body SimulateRequest
	if !s.decode(w, r, &body) {
		return
	}

	traj := s.Simulator.Simulate(r.Context(), body.Start, body.Inputs...)
	s.logger.Debug("Simulate: done", "start", body.Start, "steps", traj.Steps(), "rejected", traj.Rejected())
	s.writeJSON(w, traj.View())
}

// Replay handles POST /replay.
func (s *Server) Replay(w http.ResponseWriter, r *http.Request) {
	var body ReplayRequest
	if !s.decode(w, r, &body) {
		return
	}

	results, err := s.Simulator.ReplayLines(r.Context(), "request", body.Lines)
	if err != nil {
		http.Error(w, "Replay error: "+err.Error(), http.StatusInternalServerError)
		s.logger.Error("Replay failed", "error", err)
		return
	}

	resp := make([]ReplayResult, 0, len(results))
	for _, res := range results {
		resp = append(resp, ReplayResult{
			Line:        res.Simulation.Line,
			Description: res.Simulation.Description,
			Trajectory:  res.Trajectory.View(),
		})
	}
	s.writeJSON(w, resp)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}
