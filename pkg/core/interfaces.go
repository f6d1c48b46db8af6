package core

// HitRecord contains information about a ray-primitive intersection.
// It is transient: created by a Hit call and discarded after one ray
// evaluation.
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     Vec3      // Point of intersection
	Normal    Vec3      // Surface normal at intersection (unit length)
	FrontFace bool      // Whether the ray hit the front face
	Material  *Material // Material of the hit primitive
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Primitive is the interface for anything a ray can intersect.
// Hit returns the nearest intersection within [tMin, tMax], or false when
// the primitive is missed. Geometric degeneracies (parallel rays, negative
// discriminants) are misses, never errors.
type Primitive interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}
