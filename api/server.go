// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs cost logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"artquote/core/engine"
)

// Server is the API server
type Server struct {
	handler *Handler
	engine  *engine.Engine
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server
func NewServer(version string, eng *engine.Engine, defaultMarginPct float64) *Server {
	s := &Server{
		handler: NewHandler(eng, defaultMarginPct),
		engine:  eng,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /quote", s.handler.HandleQuote)
	s.mux.HandleFunc("POST /recommend", s.handler.HandleRecommend)
	s.mux.HandleFunc("POST /route", s.handler.HandleRoute)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Supporting endpoints
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /pricing", s.handlePricing)
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
		"version":     s.version,
		"engine":      "artquote",
		"api_version": "v1",
	}, http.StatusOK)
}

// handlePricing handles GET /pricing, exposing the active pricing table
func (s *Server) handlePricing(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.engine.Pricing(), http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
