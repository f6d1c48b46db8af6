package core

// Ray represents a ray with an origin and a unit-length direction.
// The valid parametric interval is passed to intersection queries as
// explicit tMin/tMax bounds; the ray itself is immutable.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
