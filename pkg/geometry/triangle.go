package geometry

import (
	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// barycentricEpsilon relaxes the inside-triangle test slightly so rays
// passing exactly along shared edges do not fall through the seam.
const barycentricEpsilon = 1e-9

// Triangle represents a single triangle defined by three vertices.
// When vertex normals are present the hit normal is interpolated from them
// by barycentric weight; otherwise the flat face normal is used.
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	N0, N1, N2 core.Vec3 // Optional per-vertex normals
	Smooth     bool      // Whether vertex normals are set
	Material   *core.Material

	faceNormal core.Vec3 // Cached geometric normal
	bbox       core.AABB // Cached bounding box
}

// NewTriangle creates a flat-shaded triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material *core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
	t.faceNormal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// NewSmoothTriangle creates a triangle with per-vertex normals for
// interpolated shading
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, material *core.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, material)
	t.N0 = n0.Normalize()
	t.N1 = n1.Normalize()
	t.N2 = n2.Normalize()
	t.Smooth = true
	return t
}

// Hit tests if a ray intersects the triangle using the Möller-Trumbore
// barycentric algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	const parallelEpsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray parallel to the triangle plane, or degenerate triangle
	if det > -parallelEpsilon && det < parallelEpsilon {
		return nil, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := invDet * s.Dot(h)
	if u < -barycentricEpsilon || u > 1+barycentricEpsilon {
		return nil, false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < -barycentricEpsilon || u+v > 1+barycentricEpsilon {
		return nil, false
	}

	tParam := invDet * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	// Front/back is decided by the geometric normal. The interpolated
	// shading normal follows that orientation; flipping it by its own
	// sign would invert shading near silhouettes where interpolation
	// tilts the normal past the ray direction.
	hit.FrontFace = ray.Direction.Dot(t.faceNormal) < 0
	hit.Normal = t.normalAt(u, v)
	if !hit.FrontFace {
		hit.Normal = hit.Normal.Negate()
	}

	return hit, true
}

// normalAt returns the shading normal for barycentric coordinates (u, v)
// measured against V1 and V2 respectively.
func (t *Triangle) normalAt(u, v float64) core.Vec3 {
	if !t.Smooth {
		return t.faceNormal
	}
	w := 1 - u - v
	return t.N0.Multiply(w).Add(t.N1.Multiply(u)).Add(t.N2.Multiply(v)).Normalize()
}

// FaceNormal returns the triangle's geometric normal
func (t *Triangle) FaceNormal() core.Vec3 {
	return t.faceNormal
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
