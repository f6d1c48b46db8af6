package geometry

import "math"

// solveQuadratic returns the real roots of a*t² + b*t + c = 0 in ascending
// order. A linear equation (a ≈ 0) yields a single repeated root. Returns
// false when no real root exists.
func solveQuadratic(a, b, c float64) (float64, float64, bool) {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return 0, 0, false
		}
		t := -c / b
		return t, t, true
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// nearestRootInRange prefers the smaller root, falling back to the larger
// when the smaller lies outside [tMin, tMax] or behind the ray origin.
func nearestRootInRange(t0, t1, tMin, tMax float64) (float64, bool) {
	if t0 >= tMin && t0 <= tMax {
		return t0, true
	}
	if t1 >= tMin && t1 <= tMax {
		return t1, true
	}
	return 0, false
}
