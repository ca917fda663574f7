// Package api exposes the analysis pipeline over HTTP for callers that hold
// page text already: documents arrive inline in the request body, so the
// server never touches the filesystem.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/hyperifyio/gosift/internal/app"
	"github.com/hyperifyio/gosift/internal/parse"
	"github.com/hyperifyio/gosift/internal/request"
)

// Server is the HTTP surface around one App.
type Server struct {
	router chi.Router
	app    *app.App
	log    zerolog.Logger
}

// NewServer creates and routes the server.
func NewServer(a *app.App, log zerolog.Logger) *Server {
	s := &Server{app: a, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/api/analyze", s.handleAnalyze)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// analyzeRequest is the inline-document analysis payload.
type analyzeRequest struct {
	Persona     request.Persona `json:"persona"`
	JobToBeDone request.Job     `json:"job_to_be_done"`
	Documents   []struct {
		Filename string `json:"filename"`
		Pages    []struct {
			PageNumber int    `json:"page_number"`
			Text       string `json:"text"`
		} `json:"pages"`
	} `json:"documents"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Persona.Role == "" {
		writeError(w, http.StatusBadRequest, "persona.role is required")
		return
	}
	if req.JobToBeDone.Task == "" {
		writeError(w, http.StatusBadRequest, "job_to_be_done.task is required")
		return
	}
	if len(req.Documents) == 0 {
		writeError(w, http.StatusBadRequest, "documents must be a non-empty list")
		return
	}

	m := request.Manifest{Persona: req.Persona, JobToBeDone: req.JobToBeDone}
	docs := make([]app.DocumentPages, 0, len(req.Documents))
	for i, d := range req.Documents {
		if d.Filename == "" {
			writeError(w, http.StatusBadRequest, "every document needs a filename")
			return
		}
		m.Documents = append(m.Documents, request.Document{Filename: d.Filename})
		pages := make([]parse.Page, 0, len(req.Documents[i].Pages))
		for _, p := range d.Pages {
			pages = append(pages, parse.Page{Number: p.PageNumber, Text: p.Text})
		}
		docs = append(docs, app.DocumentPages{Filename: d.Filename, Pages: pages})
	}

	out, _ := s.app.Analyze(m, docs)

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
