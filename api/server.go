package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chuymedina96/chicago-3d-printworks/internal/errors"
	"github.com/chuymedina96/chicago-3d-printworks/internal/store"
)

// Server is the API server.
type Server struct {
	handler *Handler
	router  chi.Router
	version string
	store   *store.Store
}

// NewServer creates an API server. store may be nil; workspace
// endpoints then respond with 503.
func NewServer(version string, handler *Handler, st *store.Store) *Server {
	s := &Server{
		handler: handler,
		version: version,
		store:   st,
	}

	r := chi.NewRouter()
	r.Post("/quote", s.handleQuote)
	r.Get("/materials", s.handleMaterials)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/workspace", func(r chi.Router) {
		r.Get("/", s.handleWorkspaceList)
		r.Post("/", s.handleWorkspaceSave)
		r.Delete("/", s.handleWorkspaceClear)
		r.Get("/export", s.handleWorkspaceExport)
		r.Delete("/{id}", s.handleWorkspaceDelete)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	s.writeJSON(w, s.handler.Quote(&req), http.StatusOK)
}

// handleMaterials handles GET /materials
func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"materials": s.handler.Materials(),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "c3dpw-quote",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

func (s *Server) writeStorageError(w http.ResponseWriter, err error) {
	if errors.IsType(err, errors.TypeNotFound) {
		s.writeError(w, "NOT_FOUND", err.Error(), http.StatusNotFound)
		return
	}
	s.writeError(w, "STORAGE_ERROR", err.Error(), http.StatusInternalServerError)
}
