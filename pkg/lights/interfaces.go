// Package lights defines the light sources consulted by the shading
// evaluator. Lights contribute additively; each exposes jittered sampling
// of its extent for soft shadows.
package lights

import (
	"math/rand"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is a source of direct illumination
type Light interface {
	Type() LightType

	// Sample returns a shadow-ray sample toward the light from the given
	// point. Deterministic lights ignore the random source; area-extent
	// lights jitter the sampled position with it.
	Sample(point core.Vec3, random *rand.Rand) Sample

	// Clone returns an independent copy, so scene snapshots are not
	// affected by later light mutations.
	Clone() Light
}

// Sample describes one shadow-ray sample toward a light
type Sample struct {
	Direction core.Vec3 // Unit direction from the shading point to the light
	Distance  float64   // Distance to the light (math.Inf(1) for directional)
	Intensity core.Vec3 // Light color/intensity arriving along the sample
}
