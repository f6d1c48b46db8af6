package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
	"github.com/vkor/go-whitted-raytracer/pkg/geometry"
	"github.com/vkor/go-whitted-raytracer/pkg/lights"
	"github.com/vkor/go-whitted-raytracer/pkg/material"
)

// builders maps scene names to their constructors. Mesh construction can
// fail on malformed face lists, so builders return errors.
var builders = map[string]func() (*Scene, error){
	"spheres":  NewSphereScene,
	"mesh":     NewMeshScene,
	"boxes":    NewBoxScene,
	"quadrics": NewQuadricScene,
}

// List returns the built-in scene names in stable order
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named scene
func ByName(name string) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have %v)", name, List())
	}
	return builder()
}

// defaultCamera places the camera on the -Z axis looking at the origin
func defaultCamera() CameraConfig {
	return CameraConfig{
		Position:    core.NewVec3(0, 0, -7),
		Yaw:         0,
		Pitch:       0,
		VFOVDegrees: 45,
		Projection:  ProjectionPerspective,
	}
}

// skyBlue is the background shared by the built-in scenes
var skyBlue = core.NewVec3(0.204, 0.596, 0.86)

// NewSphereScene builds the default scene: a matte sphere and a mirror
// sphere over a checkered ground plane.
func NewSphereScene() (*Scene, error) {
	s := New("spheres", defaultCamera(), skyBlue)

	matte := material.Shiny(core.NewVec3(0.9, 0.2, 0.2), 0.6, 32)
	mirror := material.Mirror(core.NewVec3(0.85, 0.85, 0.9), 0.8, 0.05)
	ground := material.Matte(core.NewVec3(1, 1, 1))
	ground.Texture = material.NewChecker(1.0,
		core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.15, 0.15, 0.15))

	left := NewObject("matte-sphere", &geometry.Sphere{
		Center: core.NewVec3(0, 0, 0), Radius: 1, Material: matte,
	})
	left.Move(core.NewVec3(-1.2, 0, 0))

	right := NewObject("mirror-sphere", &geometry.Sphere{
		Center: core.NewVec3(0, 0, 0), Radius: 1, Material: mirror,
	})
	right.Move(core.NewVec3(1.2, 0, 1.5))

	s.AddObject(left)
	s.AddObject(right)
	s.AddObject(NewObject("ground", geometry.NewHorizontalPlane(-1.4, ground)))

	s.AddLight(lights.NewPointLight(
		core.NewVec3(-4, 6, -5), core.NewVec3(1, 1, 1), 0.5))
	s.AddLight(lights.NewDirectionalLight(
		core.NewVec3(1, -1, 1), core.NewVec3(0.2, 0.2, 0.25)))
	return s, nil
}

// NewMeshScene builds a flat-shaded cube mesh floating over the ground
func NewMeshScene() (*Scene, error) {
	s := New("mesh", defaultCamera(), skyBlue)

	body := material.Shiny(core.NewVec3(0.3, 0.6, 0.9), 0.4, 16)
	cube, err := CubeMesh(1.6, body)
	if err != nil {
		return nil, err
	}

	object := NewObject("cube", cube)
	object.Rotate(core.NewVec3(0, 1, 0), math.Pi/6)
	object.Move(core.NewVec3(0, -0.3, 0))
	s.AddObject(object)

	ground := material.Matte(core.NewVec3(0.8, 0.8, 0.8))
	s.AddObject(NewObject("ground", geometry.NewHorizontalPlane(-1.4, ground)))

	s.AddLight(lights.NewPointLight(
		core.NewVec3(-4, 6, -5), core.NewVec3(1, 1, 1), 0.5))
	return s, nil
}

// NewBoxScene builds a cluster of box meshes of different sizes and
// orientations, exercising per-object transforms against one hierarchy.
func NewBoxScene() (*Scene, error) {
	s := New("boxes", defaultCamera(), skyBlue)

	type placement struct {
		name   string
		edge   float64
		color  core.Vec3
		turn   float64
		offset core.Vec3
		scale  float64
	}
	placements := []placement{
		{"box-large", 1.4, core.NewVec3(0.85, 0.4, 0.3), math.Pi / 7, core.NewVec3(-1.6, -0.7, 0.4), 1},
		{"box-mid", 1.0, core.NewVec3(0.35, 0.7, 0.45), -math.Pi / 5, core.NewVec3(0.4, -0.9, -0.6), 1},
		{"box-small", 0.8, core.NewVec3(0.4, 0.45, 0.85), math.Pi / 3, core.NewVec3(1.7, -0.4, 1.2), 1.25},
	}
	for _, p := range placements {
		cube, err := CubeMesh(p.edge, material.Shiny(p.color, 0.4, 16))
		if err != nil {
			return nil, err
		}
		object := NewObject(p.name, cube)
		object.Scale(p.scale)
		object.Rotate(core.NewVec3(0, 1, 0), p.turn)
		object.Move(p.offset)
		s.AddObject(object)
	}

	ground := material.Matte(core.NewVec3(0.8, 0.8, 0.8))
	s.AddObject(NewObject("ground", geometry.NewHorizontalPlane(-1.4, ground)))

	s.AddLight(lights.NewPointLight(
		core.NewVec3(-4, 6, -5), core.NewVec3(1, 1, 1), 0.5))
	s.AddLight(lights.NewDirectionalLight(
		core.NewVec3(0.5, -1, 0.8), core.NewVec3(0.15, 0.15, 0.18)))
	return s, nil
}

// NewQuadricScene builds an ellipsoid and a capped cone over the ground
func NewQuadricScene() (*Scene, error) {
	s := New("quadrics", defaultCamera(), skyBlue)

	cone, err := geometry.NewCone(
		core.NewVec3(0, 0.8, 0), // apex
		core.NewVec3(0, -1, 0),  // opens downward
		math.Pi/6, 2.2,          // half-angle, height
		material.Shiny(core.NewVec3(0.9, 0.7, 0.2), 0.5, 24),
	)
	if err != nil {
		return nil, err
	}

	ellipsoid := &geometry.Ellipsoid{
		Center:   core.NewVec3(0, 0, 0),
		SemiAxes: core.NewVec3(1.4, 0.7, 0.9),
		Material: material.Shiny(core.NewVec3(0.3, 0.8, 0.4), 0.6, 48),
	}

	coneObject := NewObject("cone", cone)
	coneObject.Move(core.NewVec3(-1.8, 0, 0.5))
	s.AddObject(coneObject)

	ellipsoidObject := NewObject("ellipsoid", ellipsoid)
	ellipsoidObject.Move(core.NewVec3(1.5, -0.5, 0))
	s.AddObject(ellipsoidObject)

	ground := material.Matte(core.NewVec3(0.8, 0.8, 0.8))
	s.AddObject(NewObject("ground", geometry.NewHorizontalPlane(-1.4, ground)))

	s.AddLight(lights.NewPointLight(
		core.NewVec3(-4, 6, -5), core.NewVec3(1, 1, 1), 0.5))
	return s, nil
}

// CubeMesh builds an axis-aligned cube mesh of the given edge length
// centered at the origin, flat shaded.
func CubeMesh(edge float64, mat *core.Material) (*geometry.Mesh, error) {
	h := edge / 2
	positions := []core.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	// Two triangles per face, outward winding
	faces := []int{
		0, 2, 1, 0, 3, 2, // -Z
		4, 5, 6, 4, 6, 7, // +Z
		0, 4, 7, 0, 7, 3, // -X
		1, 2, 6, 1, 6, 5, // +X
		0, 1, 5, 0, 5, 4, // -Y
		3, 7, 6, 3, 6, 2, // +Y
	}
	return geometry.NewMesh(positions, faces, mat, &geometry.MeshOptions{FlatShading: true})
}
