package core

import (
	"math"
	"math/rand"
)

// RandomInUnitSphere generates a random point inside a unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the XY plane
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	theta := 2 * math.Pi * random.Float64()
	r := math.Sqrt(random.Float64())
	return Vec3{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// PerturbDirection offsets a unit direction by a random vector inside a
// sphere of the given radius and renormalizes. Used for glossy reflection
// cones; radius 0 returns the direction unchanged.
func PerturbDirection(direction Vec3, radius float64, random *rand.Rand) Vec3 {
	if radius <= 0 {
		return direction
	}
	return direction.Add(RandomInUnitSphere(random).Multiply(radius)).Normalize()
}

// JitterAround returns a point jittered uniformly within a sphere of the
// given radius around center. Used to sample area extents of point lights
// for soft shadows.
func JitterAround(center Vec3, radius float64, random *rand.Rand) Vec3 {
	if radius <= 0 {
		return center
	}
	return center.Add(RandomInUnitSphere(random).Multiply(radius))
}
