package geometry

import (
	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// Transform is an invertible affine transform: a linear 3x3 part plus a
// translation.
type Transform struct {
	linear       Mat3
	translation  core.Vec3
	inverse      Mat3
	invTranspose Mat3
}

// NewTransform creates a transform from a linear part and translation.
// Returns an error when the linear part is not invertible.
func NewTransform(linear Mat3, translation core.Vec3) (*Transform, error) {
	inverse, err := linear.Inverse()
	if err != nil {
		return nil, err
	}
	return &Transform{
		linear:       linear,
		translation:  translation,
		inverse:      inverse,
		invTranspose: inverse.Transpose(),
	}, nil
}

// Translation creates a pure translation transform
func Translation(offset core.Vec3) *Transform {
	t, _ := NewTransform(IdentityMat3(), offset)
	return t
}

// ApplyPoint maps a point from object space to world space
func (t *Transform) ApplyPoint(point core.Vec3) core.Vec3 {
	return t.linear.MulVec(point).Add(t.translation)
}

// InvertPoint maps a point from world space to object space
func (t *Transform) InvertPoint(point core.Vec3) core.Vec3 {
	return t.inverse.MulVec(point.Subtract(t.translation))
}

// InvertVector maps a direction from world space to object space
func (t *Transform) InvertVector(vector core.Vec3) core.Vec3 {
	return t.inverse.MulVec(vector)
}

// ApplyNormal maps a surface normal from object space to world space using
// the inverse-transpose of the linear part.
func (t *Transform) ApplyNormal(normal core.Vec3) core.Vec3 {
	return t.invTranspose.MulVec(normal).Normalize()
}

// TransformedPrimitive places an object-space primitive in the world under
// an affine transform. Rays are mapped into object space for intersection;
// because the object-space direction keeps the world direction's mapped
// length, the hit parameter t is valid in both spaces.
type TransformedPrimitive struct {
	transform *Transform
	primitive core.Primitive
}

// NewTransformedPrimitive wraps a primitive with a transform
func NewTransformedPrimitive(transform *Transform, primitive core.Primitive) *TransformedPrimitive {
	return &TransformedPrimitive{transform: transform, primitive: primitive}
}

// Hit maps the ray to object space, intersects, and maps the hit back
func (tp *TransformedPrimitive) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Deliberately unnormalized direction so t carries over unchanged
	objectRay := core.Ray{
		Origin:    tp.transform.InvertPoint(ray.Origin),
		Direction: tp.transform.InvertVector(ray.Direction),
	}

	hit, ok := tp.primitive.Hit(objectRay, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = ray.At(hit.T)
	hit.Normal = tp.transform.ApplyNormal(hit.Normal)
	return hit, true
}

// BoundingBox maps the eight corners of the object-space box to world
// space and bounds them.
func (tp *TransformedPrimitive) BoundingBox() core.AABB {
	box := tp.primitive.BoundingBox()
	corners := make([]core.Vec3, 0, 8)
	for _, x := range [2]float64{box.Min.X, box.Max.X} {
		for _, y := range [2]float64{box.Min.Y, box.Max.Y} {
			for _, z := range [2]float64{box.Min.Z, box.Max.Z} {
				corners = append(corners, tp.transform.ApplyPoint(core.NewVec3(x, y, z)))
			}
		}
	}
	return core.NewAABBFromPoints(corners...)
}
