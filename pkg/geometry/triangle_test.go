package geometry

import (
	"math"
	"testing"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

func TestTriangleHit(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		testMaterial(),
	)

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
		wantT   float64
	}{
		{"center", core.NewRay(core.NewVec3(0, -0.2, -5), core.NewVec3(0, 0, 1)), true, 5},
		{"outside", core.NewRay(core.NewVec3(2, 0, -5), core.NewVec3(0, 0, 1)), false, 0},
		{"parallel to plane", core.NewRay(core.NewVec3(0, -5, 0.5), core.NewVec3(0, 1, 0)), false, 0},
		{"behind origin", core.NewRay(core.NewVec3(0, -0.2, 5), core.NewVec3(0, 0, 1)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tri.Hit(tt.ray, 0.001, math.Inf(1))
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, expected %v", ok, tt.wantHit)
			}
			if ok && math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, expected %v", hit.T, tt.wantT)
			}
		})
	}
}

func TestTriangleSharedEdgeSeam(t *testing.T) {
	// Two triangles tiling a quad; rays along the diagonal must not fall
	// through the shared edge.
	material := testMaterial()
	a := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0), material)
	b := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 0), material)

	for _, s := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		ray := core.NewRay(core.NewVec3(s, s, -5), core.NewVec3(0, 0, 1))
		_, hitA := a.Hit(ray, 0.001, math.Inf(1))
		_, hitB := b.Hit(ray, 0.001, math.Inf(1))
		if !hitA && !hitB {
			t.Errorf("ray along the shared edge at %v fell through the seam", s)
		}
	}
}

func TestSmoothTriangleNormalInterpolation(t *testing.T) {
	// Face normal -Z, toward the camera; vertex normals fan outward
	tri := NewSmoothTriangle(
		core.NewVec3(-1, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0),
		core.NewVec3(-1, 0, -1), core.NewVec3(0, 1, -1), core.NewVec3(1, 0, -1),
		testMaterial(),
	)

	// Hit very close to V1: normal approaches N1, as authored
	hit, ok := tri.Hit(core.NewRay(core.NewVec3(0, 0.99, -5), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	n1 := core.NewVec3(0, 1, -1).Normalize()
	if !hit.FrontFace || hit.Normal.Dot(n1) < 0.999 {
		t.Errorf("normal near V1 = %v front=%v, expected close to %v", hit.Normal, hit.FrontFace, n1)
	}

	// Hit from behind the face: the interpolated normal flips with it
	back, ok := tri.Hit(core.NewRay(core.NewVec3(0, 0.99, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if back.FrontFace || back.Normal.Dot(n1.Negate()) < 0.999 {
		t.Errorf("back normal = %v front=%v, expected close to %v", back.Normal, back.FrontFace, n1.Negate())
	}

	// Flat triangle from the same vertices keeps the face normal
	flat := NewTriangle(tri.V0, tri.V1, tri.V2, testMaterial())
	hitFlat, ok := flat.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	face := flat.FaceNormal()
	if math.Abs(math.Abs(hitFlat.Normal.Dot(face))-1) > 1e-12 {
		t.Errorf("flat normal %v not aligned with face normal %v", hitFlat.Normal, face)
	}
}

func TestSmoothTriangleSilhouetteNormal(t *testing.T) {
	// Near a silhouette the interpolated normal can tilt past the ray
	// direction on a front-face hit. It must come back as interpolated,
	// not flipped against the ray.
	tilted := core.NewVec3(1, 0, 0.2).Normalize()
	tri := NewSmoothTriangle(
		core.NewVec3(-1, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0),
		core.NewVec3(-1, 0, -1).Normalize(), core.NewVec3(0, 1, -1).Normalize(), tilted,
		testMaterial(),
	)

	hit, ok := tri.Hit(core.NewRay(core.NewVec3(0.9, -0.9, -5), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if !hit.FrontFace {
		t.Error("camera-side hit must be a front face")
	}
	if hit.Normal.Dot(tilted) < 0.9 {
		t.Errorf("silhouette normal = %v, expected near %v", hit.Normal, tilted)
	}
	if hit.Normal.Dot(core.NewVec3(0, 0, 1)) <= 0 {
		t.Error("the tilted normal should lean along the ray, proving it was not flipped")
	}
}
