package server

import (
	"image/png"
	"net/http"
	"strconv"
)

// handleRender renders the current scene snapshot and returns it as PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	view := s.scene.Snapshot()
	img, stats, err := s.renderer.Render(r.Context(), view)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logger.Debugw("interactive frame",
		"version", stats.SceneVersion, "elapsed", stats.Elapsed)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Scene-Version", strconv.FormatUint(stats.SceneVersion, 10))
	if err := png.Encode(w, img); err != nil {
		s.logger.Warnw("png encode failed", "error", err)
	}
}
