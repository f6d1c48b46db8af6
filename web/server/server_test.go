package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/vkor/go-whitted-raytracer/pkg/config"
	"github.com/vkor/go-whitted-raytracer/pkg/renderer"
	"github.com/vkor/go-whitted-raytracer/pkg/scene"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	s, err := scene.ByName("spheres")
	if err != nil {
		t.Fatalf("building scene: %v", err)
	}
	r, err := renderer.New(renderer.Options{Width: 16, Height: 12, Workers: 2, Seed: 42}, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("building renderer: %v", err)
	}
	return New(s, r, config.Default(), zap.NewNop().Sugar())
}

func TestHealth(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestCommandBumpsVersion(t *testing.T) {
	srv := testServer(t)
	before := srv.scene.Version()

	payload := strings.NewReader(`{"action": "toggle-antialiasing"}`)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/command", payload))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Version uint64 `json:"version"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Version != before+1 {
		t.Errorf("version = %d, expected %d", body.Version, before+1)
	}
	if !srv.scene.Settings().Antialiasing {
		t.Error("toggle did not reach the scene")
	}
}

func TestCommandRejectsBadRequests(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"GET not allowed", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"malformed json", http.MethodPost, "{", http.StatusBadRequest},
		{"unknown action", http.MethodPost, `{"action": "warp-drive"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/command", strings.NewReader(tt.body)))
			if rec.Code != tt.status {
				t.Errorf("status = %d, expected %d", rec.Code, tt.status)
			}
		})
	}
}

func TestSceneState(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scene", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var state sceneState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decoding state: %v", err)
	}
	if state.Name != "spheres" {
		t.Errorf("name = %q", state.Name)
	}
	if state.Objects != srv.scene.ObjectCount() || state.Objects == 0 {
		t.Errorf("objects = %d", state.Objects)
	}
	if state.Settings.MaxDepth != 3 || state.Settings.VolumeKind != "box" {
		t.Errorf("settings = %+v", state.Settings)
	}
}

func TestVolumesListing(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/volumes?depth=0", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var volumes []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &volumes); err != nil {
		t.Fatalf("decoding volumes: %v", err)
	}
	if len(volumes) != 1 {
		t.Errorf("depth 0 holds the root only, got %d volumes", len(volumes))
	}

	// The default setting disables the listing
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/volumes", nil))
	if err := json.Unmarshal(rec.Body.Bytes(), &volumes); err != nil {
		t.Fatalf("decoding volumes: %v", err)
	}
	if len(volumes) != 0 {
		t.Errorf("expected an empty listing, got %d volumes", len(volumes))
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/volumes?depth=nope", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d for a bad depth", rec.Code)
	}
}

func TestRenderReturnsPNG(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("content type = %q", got)
	}
	if rec.Header().Get("X-Scene-Version") == "" {
		t.Error("missing scene version header")
	}

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("decoding png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 12 {
		t.Errorf("image size = %dx%d", bounds.Dx(), bounds.Dy())
	}
}
