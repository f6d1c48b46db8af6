package geometry

import (
	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// Ellipsoid represents an axis-aligned ellipsoid with per-axis semi-axes
type Ellipsoid struct {
	Center   core.Vec3
	SemiAxes core.Vec3 // Semi-axis lengths along X, Y, Z; all positive
	Material *core.Material
}

// NewEllipsoid creates a new ellipsoid
func NewEllipsoid(center, semiAxes core.Vec3, material *core.Material) *Ellipsoid {
	return &Ellipsoid{Center: center, SemiAxes: semiAxes, Material: material}
}

// Hit tests if a ray intersects with the ellipsoid by solving the sphere
// quadratic in the space where each axis is divided by its semi-axis.
func (e *Ellipsoid) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	invAxes := core.NewVec3(1/e.SemiAxes.X, 1/e.SemiAxes.Y, 1/e.SemiAxes.Z)
	oc := ray.Origin.Subtract(e.Center).MultiplyVec(invAxes)
	dir := ray.Direction.MultiplyVec(invAxes)

	a := dir.Dot(dir)
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - 1

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
		Material: e.Material,
	}
	hit.SetFaceNormal(ray, e.normalAt(hit.Point))

	return hit, true
}

// normalAt computes the outward normal as the gradient of the implicit equation
func (e *Ellipsoid) normalAt(point core.Vec3) core.Vec3 {
	diff := point.Subtract(e.Center)
	return core.NewVec3(
		diff.X/(e.SemiAxes.X*e.SemiAxes.X),
		diff.Y/(e.SemiAxes.Y*e.SemiAxes.Y),
		diff.Z/(e.SemiAxes.Z*e.SemiAxes.Z),
	).Normalize()
}

// BoundingBox returns the axis-aligned bounding box for this ellipsoid
func (e *Ellipsoid) BoundingBox() core.AABB {
	return core.NewAABB(e.Center.Subtract(e.SemiAxes), e.Center.Add(e.SemiAxes))
}

// Implicit evaluates the ellipsoid's implicit surface equation at a point
func (e *Ellipsoid) Implicit(point core.Vec3) float64 {
	diff := point.Subtract(e.Center)
	x := diff.X / e.SemiAxes.X
	y := diff.Y / e.SemiAxes.Y
	z := diff.Z / e.SemiAxes.Z
	return x*x + y*y + z*z - 1
}
