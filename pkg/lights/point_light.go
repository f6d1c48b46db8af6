package lights

import (
	"math/rand"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// PointLight emits from a position. Radius > 0 gives the light a spherical
// extent that soft-shadow sampling jitters within.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
	Radius    float64
}

// NewPointLight creates a point light with a soft-shadow sampling radius
func NewPointLight(position, intensity core.Vec3, radius float64) *PointLight {
	return &PointLight{Position: position, Intensity: intensity, Radius: radius}
}

// Type returns the light type
func (l *PointLight) Type() LightType { return LightTypePoint }

// Clone returns an independent copy
func (l *PointLight) Clone() Light {
	c := *l
	return &c
}

// Sample jitters the light position within its radius and returns the
// direction and distance from the shading point.
func (l *PointLight) Sample(point core.Vec3, random *rand.Rand) Sample {
	position := l.Position
	if random != nil && l.Radius > 0 {
		position = core.JitterAround(l.Position, l.Radius, random)
	}

	toLight := position.Subtract(point)
	distance := toLight.Length()
	return Sample{
		Direction: toLight.Multiply(1 / distance),
		Distance:  distance,
		Intensity: l.Intensity,
	}
}
