// Package scene holds the mutable scene graph: placed objects, lights,
// camera placement and feature settings, with a version counter that
// invalidates the cached acceleration structure on every mutation.
package scene

import (
	"fmt"
	"math"
	"sync"

	"github.com/vkor/go-whitted-raytracer/pkg/bvh"
	"github.com/vkor/go-whitted-raytracer/pkg/core"
	"github.com/vkor/go-whitted-raytracer/pkg/geometry"
	"github.com/vkor/go-whitted-raytracer/pkg/lights"
)

// Projection selects how camera rays are generated
type Projection string

const (
	ProjectionPerspective Projection = "perspective"
	ProjectionParallel    Projection = "parallel"
)

// CameraConfig places the camera. Yaw rotates about the world Y axis,
// pitch about the camera's right axis, both in radians.
type CameraConfig struct {
	Position    core.Vec3
	Yaw         float64
	Pitch       float64
	VFOVDegrees float64
	Projection  Projection
}

// Settings holds the feature toggles and sampling counts that the
// interactive loop mutates between frames.
type Settings struct {
	Antialiasing     bool
	SoftShadows      bool
	GlossyReflection bool
	SamplesPerPixel  int // Jittered sub-pixel rays when antialiasing is on
	ShadowSamples    int // Shadow rays per light when soft shadows are on
	GlossySamples    int // Perturbed reflection rays when glossy reflection is on
	MaxDepth         int // Reflection recursion limit; 0 = local illumination only
	VolumeKind       bvh.VolumeKind
	VolumesDepth     int // BVH level reported by the debug listing; -1 = off
}

// DefaultSettings returns the settings every built-in scene starts with
func DefaultSettings() Settings {
	return Settings{
		Antialiasing:     false,
		SoftShadows:      false,
		GlossyReflection: false,
		SamplesPerPixel:  4,
		ShadowSamples:    16,
		GlossySamples:    4,
		MaxDepth:         3,
		VolumeKind:       bvh.VolumeBox,
		VolumesDepth:     -1,
	}
}

// Object is a placed scene object: an object-space shape under an
// accumulated affine transform.
type Object struct {
	Name   string
	shape  core.Primitive
	linear geometry.Mat3
	offset core.Vec3
	placed core.Primitive
}

// NewObject places a shape at the origin under the identity transform
func NewObject(name string, shape core.Primitive) *Object {
	o := &Object{Name: name, shape: shape, linear: geometry.IdentityMat3()}
	o.rebuild()
	return o
}

// rebuild rewraps the shape under the current transform
func (o *Object) rebuild() {
	transform, err := geometry.NewTransform(o.linear, o.offset)
	if err != nil {
		// A mutation made the linear part singular; keep the last good
		// placement rather than dropping the object.
		return
	}
	o.placed = geometry.NewTransformedPrimitive(transform, o.shape)
}

// Move translates the object by a world-space delta
func (o *Object) Move(delta core.Vec3) {
	o.offset = o.offset.Add(delta)
	o.rebuild()
}

// Rotate composes a rotation about the given axis onto the placement
func (o *Object) Rotate(axis core.Vec3, angle float64) {
	o.linear = geometry.RotationMat3(angle, axis).Mul(o.linear)
	o.rebuild()
}

// Scale composes a uniform scale onto the placement
func (o *Object) Scale(factor float64) {
	o.linear = geometry.UniformScaleMat3(factor).Mul(o.linear)
	o.rebuild()
}

// Scene is the mutable scene graph. All reads and mutations go through
// its methods; renders work on an immutable View snapshot.
type Scene struct {
	mu sync.Mutex

	Name       string
	Camera     CameraConfig
	Background core.Vec3

	objects  []*Object
	lights   []lights.Light
	settings Settings

	version       uint64
	cached        *bvh.BVH
	cachedVersion uint64
	cachedKind    bvh.VolumeKind
}

// New creates an empty scene with default settings
func New(name string, camera CameraConfig, background core.Vec3) *Scene {
	return &Scene{
		Name:       name,
		Camera:     camera,
		Background: background,
		settings:   DefaultSettings(),
		version:    1,
	}
}

// AddObject appends a placed object
func (s *Scene) AddObject(object *Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, object)
	s.version++
}

// AddLight appends a light source
func (s *Scene) AddLight(light lights.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, light)
	s.version++
}

// Version returns the current mutation counter
func (s *Scene) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Settings returns a copy of the current settings
func (s *Scene) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings applies a mutation to the settings and bumps the version
func (s *Scene) UpdateSettings(mutate func(*Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.settings)
	s.version++
}

// MutateObject applies a mutation to the indexed object and bumps the
// version. Returns an error for an out-of-range index.
func (s *Scene) MutateObject(index int, mutate func(*Object)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.objects) {
		return fmt.Errorf("object index %d out of range [0, %d)", index, len(s.objects))
	}
	mutate(s.objects[index])
	s.version++
	return nil
}

// MoveLight translates the indexed light and bumps the version. Only
// positioned lights can move; directional lights are rejected.
func (s *Scene) MoveLight(index int, delta core.Vec3) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.lights) {
		return fmt.Errorf("light index %d out of range [0, %d)", index, len(s.lights))
	}
	point, ok := s.lights[index].(*lights.PointLight)
	if !ok {
		return fmt.Errorf("light %d has no position to move", index)
	}
	point.Position = point.Position.Add(delta)
	s.version++
	return nil
}

// MoveCamera translates the camera and bumps the version
func (s *Scene) MoveCamera(delta core.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Camera.Position = s.Camera.Position.Add(delta)
	s.version++
}

// maxPitch keeps the camera basis away from the world-up singularity
const maxPitch = math.Pi/2 - 0.001

// TurnCamera adjusts yaw and pitch and bumps the version. Pitch is
// clamped short of straight up and down.
func (s *Scene) TurnCamera(deltaYaw, deltaPitch float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Camera.Yaw += deltaYaw
	s.Camera.Pitch = math.Max(-maxPitch, math.Min(maxPitch, s.Camera.Pitch+deltaPitch))
	s.version++
}

// View is an immutable snapshot of the scene for one render pass
type View struct {
	Name       string
	Camera     CameraConfig
	Background core.Vec3
	Lights     []lights.Light
	Settings   Settings
	Accel      *bvh.BVH
	Primitives []core.Primitive
	Version    uint64
}

// Snapshot returns a render-ready view, rebuilding the cached
// acceleration structure when the version or volume kind changed since
// the last build.
func (s *Scene) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	primitives := make([]core.Primitive, len(s.objects))
	for i, object := range s.objects {
		primitives[i] = object.placed
	}

	if s.cached == nil || s.cachedVersion != s.version || s.cachedKind != s.settings.VolumeKind {
		s.cached = bvh.Build(primitives, s.settings.VolumeKind)
		s.cachedVersion = s.version
		s.cachedKind = s.settings.VolumeKind
	}
	// Lights are cloned so a later move-light cannot race a render
	// reading this snapshot.
	lightsCopy := make([]lights.Light, len(s.lights))
	for i, light := range s.lights {
		lightsCopy[i] = light.Clone()
	}

	return View{
		Name:       s.Name,
		Camera:     s.Camera,
		Background: s.Background,
		Lights:     lightsCopy,
		Settings:   s.settings,
		Accel:      s.cached,
		Primitives: primitives,
		Version:    s.version,
	}
}

// ObjectCount returns the number of placed objects
func (s *Scene) ObjectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
