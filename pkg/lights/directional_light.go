package lights

import (
	"math"
	"math/rand"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// DirectionalLight emits parallel rays from an infinitely distant source
type DirectionalLight struct {
	Direction core.Vec3 // Direction the light travels (normalized)
	Intensity core.Vec3
}

// NewDirectionalLight creates a directional light
func NewDirectionalLight(direction, intensity core.Vec3) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Intensity: intensity}
}

// Type returns the light type
func (l *DirectionalLight) Type() LightType { return LightTypeDirectional }

// Clone returns an independent copy
func (l *DirectionalLight) Clone() Light {
	c := *l
	return &c
}

// Sample returns the fixed direction toward the light; occluders at any
// distance cast shadows.
func (l *DirectionalLight) Sample(point core.Vec3, random *rand.Rand) Sample {
	return Sample{
		Direction: l.Direction.Negate(),
		Distance:  math.Inf(1),
		Intensity: l.Intensity,
	}
}
