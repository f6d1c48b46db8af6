package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/vkor/go-whitted-raytracer/pkg/bvh"
	"github.com/vkor/go-whitted-raytracer/pkg/config"
	"github.com/vkor/go-whitted-raytracer/pkg/logger"
	"github.com/vkor/go-whitted-raytracer/pkg/renderer"
	"github.com/vkor/go-whitted-raytracer/pkg/scene"
	"github.com/vkor/go-whitted-raytracer/web/server"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	sceneName := flag.String("scene", "", fmt.Sprintf("Scene to render: %s", strings.Join(scene.List(), ", ")))
	output := flag.String("output", "", "Output PNG path")
	width := flag.Int("width", 0, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels")
	depth := flag.Int("depth", -1, "Reflection recursion limit")
	antialias := flag.Bool("antialias", false, "Enable jittered sub-pixel antialiasing")
	softShadows := flag.Bool("soft-shadows", false, "Enable jittered soft shadows")
	glossy := flag.Bool("glossy", false, "Enable glossy reflection")
	volumeKind := flag.String("volumes", "", "Bounding volume kind: box or sphere")
	workers := flag.Int("workers", 0, "Parallel workers (0 = all CPUs)")
	serve := flag.Bool("serve", false, "Start the interactive web server instead of a one-shot render")
	addr := flag.String("addr", "", "Web server listen address")
	flag.Parse()

	cfg, err := config.Load(*configPath, func(c *config.Config) {
		if *sceneName != "" {
			c.Render.Scene = *sceneName
		}
		if *output != "" {
			c.Image.Output = *output
		}
		if *width > 0 {
			c.Image.Width = *width
		}
		if *height > 0 {
			c.Image.Height = *height
		}
		if *depth >= 0 {
			c.Render.MaxDepth = *depth
		}
		if *antialias {
			c.Render.Antialiasing = true
		}
		if *softShadows {
			c.Render.SoftShadows = true
		}
		if *glossy {
			c.Render.GlossyReflection = true
		}
		if *volumeKind != "" {
			c.Render.VolumeKind = *volumeKind
		}
		if *workers > 0 {
			c.Render.Workers = *workers
		}
		if *addr != "" {
			c.Web.Addr = *addr
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer log.Sync()
	sugar := log.Sugar()

	if err := run(cfg, sugar, *serve); err != nil {
		sugar.Fatalw("raytracer failed", "error", err)
	}
}

func run(cfg *config.Config, sugar *zap.SugaredLogger, serve bool) error {
	s, err := scene.ByName(cfg.Render.Scene)
	if err != nil {
		return err
	}
	s.UpdateSettings(func(st *scene.Settings) {
		st.MaxDepth = cfg.Render.MaxDepth
		st.SamplesPerPixel = cfg.Render.SamplesPerPixel
		st.ShadowSamples = cfg.Render.ShadowSamples
		st.GlossySamples = cfg.Render.GlossySamples
		st.Antialiasing = cfg.Render.Antialiasing
		st.SoftShadows = cfg.Render.SoftShadows
		st.GlossyReflection = cfg.Render.GlossyReflection
		if cfg.Render.VolumeKind == "sphere" {
			st.VolumeKind = bvh.VolumeSphere
		} else {
			st.VolumeKind = bvh.VolumeBox
		}
	})

	r, err := renderer.New(renderer.Options{
		Width:   cfg.Image.Width,
		Height:  cfg.Image.Height,
		Workers: cfg.Render.Workers,
		Seed:    cfg.Render.Seed,
	}, sugar)
	if err != nil {
		return err
	}

	if serve {
		srv := server.New(s, r, cfg, sugar)
		sugar.Infow("starting interactive server", "addr", cfg.Web.Addr)
		return srv.ListenAndServe(cfg.Web.Addr)
	}

	sugar.Infow("rendering", "scene", s.Name,
		"size", fmt.Sprintf("%dx%d", cfg.Image.Width, cfg.Image.Height),
		"depth", cfg.Render.MaxDepth)

	img, stats, err := r.Render(context.Background(), s.Snapshot())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Image.Output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	file, err := os.Create(cfg.Image.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	sugar.Infow("render saved", "file", cfg.Image.Output,
		"elapsed", stats.Elapsed, "raysPerSecond", int64(stats.RaysPerSecond()))
	return nil
}
