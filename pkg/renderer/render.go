// Package renderer turns a scene view into an image: camera ray
// generation, Phong shading with recursive reflection, and parallel
// per-row dispatch.
package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
	"github.com/vkor/go-whitted-raytracer/pkg/scene"
)

// Options configures a renderer
type Options struct {
	Width   int
	Height  int
	Workers int   // 0 = runtime.NumCPU()
	Seed    int64 // Base seed; each row derives its own stream
}

// Renderer renders scene views into RGBA images. Safe to reuse across
// frames; Render holds no state between calls.
type Renderer struct {
	options Options
	logger  *zap.SugaredLogger
}

// New creates a renderer. A nil logger disables render logging.
func New(options Options, logger *zap.SugaredLogger) (*Renderer, error) {
	if options.Width <= 0 || options.Height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", options.Width, options.Height)
	}
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Renderer{options: options, logger: logger}, nil
}

// Render traces the full image for one scene view. Rows are dispatched
// in parallel; each goroutine writes a disjoint horizontal band of the
// shared image, so the pixels need no synchronization.
func (r *Renderer) Render(ctx context.Context, view scene.View) (*image.RGBA, Stats, error) {
	start := time.Now()
	width, height := r.options.Width, r.options.Height

	camera := NewCamera(view.Camera, width, height)
	shader := NewShader(view)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	var primaryRays atomic.Int64

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.options.Workers)
	for j := 0; j < height; j++ {
		row := j
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			random := rand.New(rand.NewSource(r.options.Seed + int64(row)*1000003))
			for i := 0; i < width; i++ {
				pixel := r.shadePixel(camera, shader, i, row, view.Settings, random, &primaryRays)
				img.SetRGBA(i, row, encodeColor(pixel))
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{
		Width:        width,
		Height:       height,
		PrimaryRays:  primaryRays.Load(),
		Elapsed:      time.Since(start),
		SceneVersion: view.Version,
	}
	r.logger.Infow("render complete",
		"scene", view.Name,
		"size", fmt.Sprintf("%dx%d", width, height),
		"primaryRays", stats.PrimaryRays,
		"elapsed", stats.Elapsed,
	)
	return img, stats, nil
}

// shadePixel averages jittered sub-pixel samples when antialiasing is
// on, otherwise shoots a single ray through the pixel center.
func (r *Renderer) shadePixel(camera *Camera, shader *Shader, i, j int, settings scene.Settings, random *rand.Rand, counter *atomic.Int64) core.Vec3 {
	if !settings.Antialiasing || settings.SamplesPerPixel <= 1 {
		counter.Add(1)
		return shader.Shade(camera.GetRay(i, j, 0.5, 0.5), 0, random)
	}

	sum := core.Vec3{}
	for s := 0; s < settings.SamplesPerPixel; s++ {
		ray := camera.GetRay(i, j, random.Float64(), random.Float64())
		sum = sum.Add(shader.Shade(ray, 0, random))
	}
	counter.Add(int64(settings.SamplesPerPixel))
	return sum.Multiply(1 / float64(settings.SamplesPerPixel))
}

// encodeColor clamps a linear color to [0,1] and packs it as 8-bit RGBA
func encodeColor(c core.Vec3) color.RGBA {
	clamped := c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(clamped.X*255 + 0.5),
		G: uint8(clamped.Y*255 + 0.5),
		B: uint8(clamped.Z*255 + 0.5),
		A: 255,
	}
}
