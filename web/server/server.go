// Package server exposes the interactive rendering loop over HTTP:
// render the current scene, mutate it with discrete commands, and
// inspect the bounding volume hierarchy.
package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vkor/go-whitted-raytracer/pkg/config"
	"github.com/vkor/go-whitted-raytracer/pkg/renderer"
	"github.com/vkor/go-whitted-raytracer/pkg/scene"
)

// Server handles interactive requests against one mutable scene
type Server struct {
	scene    *scene.Scene
	renderer *renderer.Renderer
	cfg      *config.Config
	logger   *zap.SugaredLogger
	mux      *http.ServeMux
}

// New creates a web server around a scene and a renderer
func New(s *scene.Scene, r *renderer.Renderer, cfg *config.Config, logger *zap.SugaredLogger) *Server {
	srv := &Server{
		scene:    s,
		renderer: r,
		cfg:      cfg,
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	srv.mux.HandleFunc("/api/health", srv.handleHealth)
	srv.mux.HandleFunc("/api/render", srv.handleRender)
	srv.mux.HandleFunc("/api/command", srv.handleCommand)
	srv.mux.HandleFunc("/api/scene", srv.handleScene)
	srv.mux.HandleFunc("/api/volumes", srv.handleVolumes)
	return srv
}

// ListenAndServe blocks serving HTTP on the given address
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// ServeHTTP makes the server usable under httptest
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError reports a failure as a JSON body
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
