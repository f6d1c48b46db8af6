package core

import "math"

// BoundingSphere is the alternative bounding volume to AABB. The volume
// test is a single quadratic, cheaper than three slab tests for some scenes.
type BoundingSphere struct {
	Center Vec3
	Radius float64
}

// NewBoundingSphereFromAABB returns the sphere circumscribing the box
func NewBoundingSphereFromAABB(box AABB) BoundingSphere {
	center := box.Center()
	return BoundingSphere{
		Center: center,
		Radius: box.Max.Subtract(center).Length(),
	}
}

// Hit tests if a ray passes through the sphere within [tMin, tMax]
func (bs BoundingSphere) Hit(ray Ray, tMin, tMax float64) bool {
	_, ok := bs.HitDistance(ray, tMin, tMax)
	return ok
}

// HitDistance returns the parametric entry distance of the ray into the
// sphere. A ray starting inside the sphere enters at tMin. Returns false
// on a miss.
func (bs BoundingSphere) HitDistance(ray Ray, tMin, tMax float64) (float64, bool) {
	oc := ray.Origin.Subtract(bs.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - bs.Radius*bs.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	tEnter := (-halfB - sqrtD) / a
	tExit := (-halfB + sqrtD) / a

	if tExit < tMin || tEnter > tMax {
		return 0, false
	}
	return math.Max(tEnter, tMin), true
}

// Union returns the minimal sphere enclosing both spheres
func (bs BoundingSphere) Union(other BoundingSphere) BoundingSphere {
	span := other.Center.Subtract(bs.Center)
	distance := span.Length()

	// One sphere already contains the other
	if distance+other.Radius <= bs.Radius {
		return bs
	}
	if distance+bs.Radius <= other.Radius {
		return other
	}

	radius := (distance + bs.Radius + other.Radius) / 2
	direction := span.Multiply(1 / distance)
	center := bs.Center.Add(direction.Multiply(radius - bs.Radius))
	return BoundingSphere{Center: center, Radius: radius}
}

// Contains reports whether other lies entirely inside this sphere,
// allowing a small tolerance for accumulated floating-point error.
func (bs BoundingSphere) Contains(other BoundingSphere) bool {
	const epsilon = 1e-9
	distance := other.Center.Subtract(bs.Center).Length()
	return distance+other.Radius <= bs.Radius+epsilon
}
