// Package config handles renderer configuration loading and merging.
package config

// Config holds all renderer settings
type Config struct {
	Image   ImageConfig   `yaml:"image"`
	Render  RenderConfig  `yaml:"render"`
	Web     WebConfig     `yaml:"web"`
	Logging LoggingConfig `yaml:"logging"`
}

// ImageConfig holds output image settings
type ImageConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Output string `yaml:"output"`
}

// RenderConfig holds tracing settings
type RenderConfig struct {
	Scene            string `yaml:"scene"`
	MaxDepth         int    `yaml:"max_depth"`
	SamplesPerPixel  int    `yaml:"samples_per_pixel"`
	ShadowSamples    int    `yaml:"shadow_samples"`
	GlossySamples    int    `yaml:"glossy_samples"`
	Antialiasing     bool   `yaml:"antialiasing"`
	SoftShadows      bool   `yaml:"soft_shadows"`
	GlossyReflection bool   `yaml:"glossy_reflection"`
	VolumeKind       string `yaml:"volume_kind"` // "box" or "sphere"
	Workers          int    `yaml:"workers"`     // 0 = all CPUs
	Seed             int64  `yaml:"seed"`
}

// WebConfig holds interactive server settings
type WebConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Image: ImageConfig{
			Width:  800,
			Height: 600,
			Output: "render.png",
		},
		Render: RenderConfig{
			Scene:            "spheres",
			MaxDepth:         3,
			SamplesPerPixel:  4,
			ShadowSamples:    16,
			GlossySamples:    4,
			Antialiasing:     false,
			SoftShadows:      false,
			GlossyReflection: false,
			VolumeKind:       "box",
			Workers:          0,
			Seed:             42,
		},
		Web: WebConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
