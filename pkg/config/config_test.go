package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
image:
  width: 1920
  height: 1080
render:
  scene: quadrics
  volume_kind: sphere
logging:
  level: debug
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	got, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	expected := Default()
	expected.Image.Width = 1920
	expected.Image.Height = 1080
	expected.Render.Scene = "quadrics"
	expected.Render.VolumeKind = "sphere"
	expected.Logging.Level = "debug"

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("config mismatch (-expected +got):\n%s", diff)
	}
}

func TestLoadOverridesBeatFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("render:\n  max_depth: 5\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	got, err := Load(path, func(c *Config) {
		c.Render.MaxDepth = 9
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Render.MaxDepth != 9 {
		t.Errorf("max depth = %d, expected the override 9", got.Render.MaxDepth)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml", nil); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Image.Width = 0 }},
		{"negative depth", func(c *Config) { c.Render.MaxDepth = -1 }},
		{"zero samples", func(c *Config) { c.Render.SamplesPerPixel = 0 }},
		{"zero shadow samples", func(c *Config) { c.Render.ShadowSamples = 0 }},
		{"zero glossy samples", func(c *Config) { c.Render.GlossySamples = 0 }},
		{"bad volume kind", func(c *Config) { c.Render.VolumeKind = "cylinder" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
