package geometry

import (
	"math"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Normal vector (normalized by the constructor)
	Material *core.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material *core.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Material: material}
}

// NewHorizontalPlane creates a plane y = height with an upward normal
func NewHorizontalPlane(height float64, material *core.Material) *Plane {
	return NewPlane(core.NewVec3(0, height, 0), core.NewVec3(0, 1, 0), material)
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel ray: a miss, not an error
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}

// BoundingBox returns a bounding box for this plane. Axis-aligned planes
// get a thin slab so the BVH can still cull them along one axis.
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const thickness = 1e-3

	min := core.NewVec3(-largeValue, -largeValue, -largeValue)
	max := core.NewVec3(largeValue, largeValue, largeValue)

	const alignedThreshold = 1.0 - 1e-9
	switch {
	case math.Abs(p.Normal.X) > alignedThreshold:
		min.X = p.Point.X - thickness
		max.X = p.Point.X + thickness
	case math.Abs(p.Normal.Y) > alignedThreshold:
		min.Y = p.Point.Y - thickness
		max.Y = p.Point.Y + thickness
	case math.Abs(p.Normal.Z) > alignedThreshold:
		min.Z = p.Point.Z - thickness
		max.Z = p.Point.Z + thickness
	}

	return core.NewAABB(min, max)
}

// Implicit evaluates the plane's implicit equation at a point
func (p *Plane) Implicit(point core.Vec3) float64 {
	return point.Subtract(p.Point).Dot(p.Normal)
}
