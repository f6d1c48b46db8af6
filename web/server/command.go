package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vkor/go-whitted-raytracer/pkg/scene"
)

// handleCommand applies one scene mutation. The next render request
// sees the bumped version and rebuilds the hierarchy.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("POST required"))
		return
	}

	var cmd scene.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding command: %w", err))
		return
	}

	if err := s.scene.Apply(cmd); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.logger.Infow("scene command", "action", cmd.Action, "version", s.scene.Version())
	writeJSON(w, http.StatusOK, map[string]any{
		"version": s.scene.Version(),
	})
}
