package geometry

import (
	"fmt"
	"math"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// Cone represents a finite cone opening from an apex along a unit axis,
// truncated by a circular slab cap at the given height.
type Cone struct {
	Apex      core.Vec3
	Axis      core.Vec3 // Unit vector from apex toward the cap
	HalfAngle float64   // Angle between the axis and the lateral surface, radians
	Height    float64   // Axial distance from apex to the slab cap
	Material  *core.Material

	cosSquared float64 // Cached cos²(HalfAngle)
	capRadius  float64 // Cached radius of the slab cap
}

// NewCone creates a new capped cone
func NewCone(apex, axis core.Vec3, halfAngle, height float64, material *core.Material) (*Cone, error) {
	if halfAngle <= 0 || halfAngle >= math.Pi/2 {
		return nil, fmt.Errorf("cone half-angle must be in (0, π/2), got %f", halfAngle)
	}
	if height <= 0 {
		return nil, fmt.Errorf("cone height must be positive, got %f", height)
	}
	if axis.Length() == 0 {
		return nil, fmt.Errorf("cone axis must be non-zero")
	}

	cos := math.Cos(halfAngle)
	return &Cone{
		Apex:       apex,
		Axis:       axis.Normalize(),
		HalfAngle:  halfAngle,
		Height:     height,
		Material:   material,
		cosSquared: cos * cos,
		capRadius:  height * math.Tan(halfAngle),
	}, nil
}

// Hit tests the ray against the lateral surface and the slab cap,
// returning the nearer of the two intersections.
func (c *Cone) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	lateralHit, lateralOK := c.hitLateral(ray, tMin, tMax)
	capHit, capOK := c.hitCap(ray, tMin, tMax)

	switch {
	case lateralOK && capOK:
		if lateralHit.T <= capHit.T {
			return lateralHit, true
		}
		return capHit, true
	case lateralOK:
		return lateralHit, true
	case capOK:
		return capHit, true
	default:
		return nil, false
	}
}

// hitLateral intersects the infinite cone (v·u)² = cos²θ·(u·u) and clips
// the roots against the apex-to-cap axial range.
func (c *Cone) hitLateral(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	w := ray.Origin.Subtract(c.Apex)
	dv := ray.Direction.Dot(c.Axis)
	wv := w.Dot(c.Axis)

	a := dv*dv - c.cosSquared*ray.Direction.Dot(ray.Direction)
	b := 2 * (dv*wv - c.cosSquared*ray.Direction.Dot(w))
	cc := wv*wv - c.cosSquared*w.Dot(w)

	t0, t1, ok := solveQuadratic(a, b, cc)
	if !ok {
		return nil, false
	}

	// The smaller root may land on the mirror cone or outside the axial
	// range; try both roots in order.
	for _, t := range [2]float64{t0, t1} {
		if t < tMin || t > tMax {
			continue
		}
		point := ray.At(t)
		axial := point.Subtract(c.Apex).Dot(c.Axis)
		if axial < 0 || axial > c.Height {
			continue
		}

		hit := &core.HitRecord{T: t, Point: point, Material: c.Material}
		hit.SetFaceNormal(ray, c.lateralNormal(point))
		return hit, true
	}

	return nil, false
}

// hitCap intersects the circular slab closing the cone's open end
func (c *Cone) hitCap(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := c.Apex.Add(c.Axis.Multiply(c.Height))
	denominator := ray.Direction.Dot(c.Axis)
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	t := center.Subtract(ray.Origin).Dot(c.Axis) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	if point.Subtract(center).LengthSquared() > c.capRadius*c.capRadius {
		return nil, false
	}

	hit := &core.HitRecord{T: t, Point: point, Material: c.Material}
	hit.SetFaceNormal(ray, c.Axis)
	return hit, true
}

// lateralNormal computes the outward normal on the lateral surface from
// the gradient of the implicit equation.
func (c *Cone) lateralNormal(point core.Vec3) core.Vec3 {
	u := point.Subtract(c.Apex)
	axial := u.Dot(c.Axis)
	return u.Multiply(c.cosSquared).Subtract(c.Axis.Multiply(axial)).Normalize()
}

// BoundingBox returns a conservative axis-aligned bounding box: the box of
// the cap disk unioned with the apex point.
func (c *Cone) BoundingBox() core.AABB {
	center := c.Apex.Add(c.Axis.Multiply(c.Height))
	radius := core.NewVec3(c.capRadius, c.capRadius, c.capRadius)
	capBox := core.NewAABB(center.Subtract(radius), center.Add(radius))
	return capBox.Union(core.NewAABBFromPoints(c.Apex))
}

// Implicit evaluates the lateral surface's implicit equation at a point.
// Points on the slab cap do not satisfy it; tests use lateral hits.
func (c *Cone) Implicit(point core.Vec3) float64 {
	u := point.Subtract(c.Apex)
	axial := u.Dot(c.Axis)
	return axial*axial - c.cosSquared*u.Dot(u)
}

// OnCap reports whether a point lies on the slab cap plane
func (c *Cone) OnCap(point core.Vec3) bool {
	axial := point.Subtract(c.Apex).Dot(c.Axis)
	return math.Abs(axial-c.Height) < 1e-6
}
