package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < overrides.
// An empty path skips the file step; overrides may be nil.
func Load(path string, overrides func(*Config)) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat("./config.yaml"); err == nil {
			path = "./config.yaml"
		}
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if overrides != nil {
		overrides(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile merges a YAML file over the current values
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects settings the renderer cannot run with
func (c *Config) Validate() error {
	if c.Image.Width <= 0 || c.Image.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Image.Width, c.Image.Height)
	}
	if c.Render.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative, got %d", c.Render.MaxDepth)
	}
	if c.Render.SamplesPerPixel < 1 {
		return fmt.Errorf("samples_per_pixel must be positive, got %d", c.Render.SamplesPerPixel)
	}
	if c.Render.ShadowSamples < 1 {
		return fmt.Errorf("shadow_samples must be positive, got %d", c.Render.ShadowSamples)
	}
	if c.Render.GlossySamples < 1 {
		return fmt.Errorf("glossy_samples must be positive, got %d", c.Render.GlossySamples)
	}
	if kind := c.Render.VolumeKind; kind != "box" && kind != "sphere" {
		return fmt.Errorf("volume_kind must be box or sphere, got %q", kind)
	}
	return nil
}
