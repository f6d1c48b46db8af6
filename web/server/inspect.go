package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vkor/go-whitted-raytracer/pkg/bvh"
)

// sceneState is the JSON shape of the scene inspection endpoint
type sceneState struct {
	Name     string        `json:"name"`
	Version  uint64        `json:"version"`
	Objects  int           `json:"objects"`
	Settings settingsState `json:"settings"`
}

type settingsState struct {
	Antialiasing     bool   `json:"antialiasing"`
	SoftShadows      bool   `json:"softShadows"`
	GlossyReflection bool   `json:"glossyReflection"`
	SamplesPerPixel  int    `json:"samplesPerPixel"`
	ShadowSamples    int    `json:"shadowSamples"`
	GlossySamples    int    `json:"glossySamples"`
	MaxDepth         int    `json:"maxDepth"`
	VolumeKind       string `json:"volumeKind"`
	VolumesDepth     int    `json:"volumesDepth"`
}

// handleScene reports the current scene name, version and settings
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	settings := s.scene.Settings()
	writeJSON(w, http.StatusOK, sceneState{
		Name:    s.scene.Name,
		Version: s.scene.Version(),
		Objects: s.scene.ObjectCount(),
		Settings: settingsState{
			Antialiasing:     settings.Antialiasing,
			SoftShadows:      settings.SoftShadows,
			GlossyReflection: settings.GlossyReflection,
			SamplesPerPixel:  settings.SamplesPerPixel,
			ShadowSamples:    settings.ShadowSamples,
			GlossySamples:    settings.GlossySamples,
			MaxDepth:         settings.MaxDepth,
			VolumeKind:       settings.VolumeKind.String(),
			VolumesDepth:     settings.VolumesDepth,
		},
	})
}

// handleVolumes lists the bounding volumes at a tree level as JSON. The
// level comes from the query or, absent that, the scene's setting.
func (s *Server) handleVolumes(w http.ResponseWriter, r *http.Request) {
	depth := s.scene.Settings().VolumesDepth
	if raw := r.URL.Query().Get("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("bad depth %q: %w", raw, err))
			return
		}
		depth = parsed
	}
	if depth < 0 {
		writeJSON(w, http.StatusOK, []bvh.DebugVolume{})
		return
	}

	view := s.scene.Snapshot()
	writeJSON(w, http.StatusOK, view.Accel.VolumesAtDepth(depth))
}
