package geometry

import (
	"math"
	"testing"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// unitCube builds a flat-shaded cube of edge 2 centered at the origin
func unitCube(t *testing.T) *Mesh {
	t.Helper()
	positions := []core.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	faces := []int{
		0, 2, 1, 0, 3, 2,
		4, 5, 6, 4, 6, 7,
		0, 4, 7, 0, 7, 3,
		1, 2, 6, 1, 6, 5,
		0, 1, 5, 0, 5, 4,
		3, 7, 6, 3, 6, 2,
	}
	mesh, err := NewMesh(positions, faces, testMaterial(), &MeshOptions{FlatShading: true})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return mesh
}

func TestMeshValidation(t *testing.T) {
	positions := []core.Vec3{{}, {X: 1}, {Y: 1}}

	if _, err := NewMesh(positions, []int{0, 1}, testMaterial(), nil); err == nil {
		t.Error("expected an error for a non-multiple-of-3 face list")
	}
	if _, err := NewMesh(positions, []int{0, 1, 3}, testMaterial(), nil); err == nil {
		t.Error("expected an error for an out-of-range index")
	}
	if _, err := NewMesh(positions, []int{0, 1, 2}, testMaterial(),
		&MeshOptions{Normals: []core.Vec3{{Z: 1}}}); err == nil {
		t.Error("expected an error for a normal count mismatch")
	}
}

func TestMeshCubeAxisRays(t *testing.T) {
	cube := unitCube(t)

	tests := []struct {
		name       string
		ray        core.Ray
		wantT      float64
		wantNormal core.Vec3
	}{
		{"entry -x", core.NewRay(core.NewVec3(-5, 0.2, 0.3), core.NewVec3(1, 0, 0)), 4, core.NewVec3(-1, 0, 0)},
		{"entry +y", core.NewRay(core.NewVec3(0.1, 5, -0.2), core.NewVec3(0, -1, 0)), 4, core.NewVec3(0, 1, 0)},
		{"entry -z", core.NewRay(core.NewVec3(0.4, -0.4, -5), core.NewVec3(0, 0, 1)), 4, core.NewVec3(0, 0, -1)},
		{"exit from inside", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 1, core.NewVec3(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := cube.Hit(tt.ray, 0.001, math.Inf(1))
			if !ok {
				t.Fatal("expected a hit")
			}
			if math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, expected %v", hit.T, tt.wantT)
			}
			if hit.Normal.Subtract(tt.wantNormal).Length() > 1e-9 {
				t.Errorf("normal = %v, expected %v", hit.Normal, tt.wantNormal)
			}
		})
	}

	if cube.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, expected 12", cube.TriangleCount())
	}
	box := cube.BoundingBox()
	if box.Min != core.NewVec3(-1, -1, -1) || box.Max != core.NewVec3(1, 1, 1) {
		t.Errorf("bounds: got %v to %v", box.Min, box.Max)
	}
}

func TestComputeVertexNormalsAreaWeighted(t *testing.T) {
	// Vertex 0 is shared by a large face in the XY plane and a small face
	// in the XZ plane; the averaged normal must lean toward the large one.
	positions := []core.Vec3{
		{}, {X: 10}, {Y: 10}, // Large triangle, normal +Z
		{X: 0.1}, {Z: -0.1}, // Small triangle with vertex 0, normal +Y
	}
	faces := []int{
		0, 1, 2,
		0, 3, 4,
	}

	normals := ComputeVertexNormals(positions, faces)
	shared := normals[0]
	if shared.Z <= 0 || shared.Y <= 0 {
		t.Fatalf("shared normal %v must blend both faces", shared)
	}
	if shared.Z <= shared.Y {
		t.Errorf("shared normal %v must be dominated by the larger face", shared)
	}
	if math.Abs(shared.Length()-1) > 1e-12 {
		t.Errorf("normal not unit length: %v", shared.Length())
	}

	// Vertices used by only one face keep that face's direction
	if normals[1].Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("normals[1] = %v, expected +Z", normals[1])
	}
}

func TestMeshSmoothShadingUsesVertexNormals(t *testing.T) {
	// A single triangle with supplied normals tilted off the face
	positions := []core.Vec3{{X: -1, Y: -1}, {X: 1, Y: -1}, {Y: 1}}
	tilted := core.NewVec3(0, 0.3, 1).Normalize()
	mesh, err := NewMesh(positions, []int{0, 1, 2}, testMaterial(),
		&MeshOptions{Normals: []core.Vec3{tilted, tilted, tilted}})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}

	hit, ok := mesh.Hit(core.NewRay(core.NewVec3(0, -0.2, -5), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	// Orientation follows the geometric face, so compare up to sign
	if math.Abs(math.Abs(hit.Normal.Dot(tilted))-1) > 1e-9 {
		t.Errorf("normal = %v, expected along %v", hit.Normal, tilted)
	}
}
