package geometry

import (
	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere defined by center and radius
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material *core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic from substituting the ray into |p - center|² = r²
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	t0, t1, ok := solveQuadratic(a, b, c)
	if !ok {
		return nil, false
	}
	root, ok := nearestRootInRange(t0, t1, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}

// Implicit evaluates the sphere's implicit surface equation at a point.
// Zero on the surface, negative inside, positive outside.
func (s *Sphere) Implicit(point core.Vec3) float64 {
	return point.Subtract(s.Center).LengthSquared() - s.Radius*s.Radius
}
