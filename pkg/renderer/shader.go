package renderer

import (
	"math"
	"math/rand"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
	"github.com/vkor/go-whitted-raytracer/pkg/lights"
	"github.com/vkor/go-whitted-raytracer/pkg/scene"
)

// shadowBias offsets secondary ray origins along the surface normal so a
// surface does not shadow or reflect onto itself.
const shadowBias = 1e-4

// Shader evaluates Phong shading with shadow rays and recursive
// reflection against one scene view. It holds no per-pixel state; each
// worker passes its own random source.
type Shader struct {
	view scene.View
}

// NewShader creates a shader over a scene view
func NewShader(view scene.View) *Shader {
	return &Shader{view: view}
}

// Shade traces a ray into the scene and returns its color. depth counts
// reflection bounces already taken; recursion stops at the view's limit.
func (s *Shader) Shade(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	hit, ok := s.view.Accel.Hit(ray, shadowBias, math.Inf(1))
	if !ok {
		return s.view.Background
	}

	mat := hit.Material
	base := mat.ColorAt(hit.Point)
	color := base.Multiply(mat.Ambient)

	for _, light := range s.view.Lights {
		color = color.Add(s.shadeDirect(hit, ray, base, light, random))
	}

	if depth < s.view.Settings.MaxDepth && mat.IsReflective() {
		ideal := ray.Direction.Reflect(hit.Normal)
		origin := hit.Point.Add(hit.Normal.Multiply(shadowBias))

		samples := 1
		glossy := s.view.Settings.GlossyReflection && mat.Glossiness > 0 && random != nil
		if glossy && s.view.Settings.GlossySamples > 1 {
			samples = s.view.Settings.GlossySamples
		}

		sum := core.Vec3{}
		for i := 0; i < samples; i++ {
			direction := ideal
			if glossy {
				direction = core.PerturbDirection(ideal, mat.Glossiness, random)
				// Keep the perturbed direction above the surface
				if direction.Dot(hit.Normal) < 0 {
					direction = direction.Reflect(hit.Normal)
				}
			}
			sum = sum.Add(s.Shade(core.NewRay(origin, direction), depth+1, random))
		}
		color = color.Add(sum.Multiply(mat.Reflectivity / float64(samples)))
	}

	return color
}

// shadeDirect accumulates one light's diffuse and specular terms across
// its shadow samples. With soft shadows off a single unjittered sample
// gives a hard shadow; with them on the average over jittered samples
// approaches the visible fraction of the light's extent.
func (s *Shader) shadeDirect(hit *core.HitRecord, ray core.Ray, base core.Vec3, light lights.Light, random *rand.Rand) core.Vec3 {
	samples := 1
	sampleRandom := (*rand.Rand)(nil)
	if s.view.Settings.SoftShadows && s.view.Settings.ShadowSamples > 0 {
		samples = s.view.Settings.ShadowSamples
		sampleRandom = random
	}

	mat := hit.Material
	origin := hit.Point.Add(hit.Normal.Multiply(shadowBias))
	toViewer := ray.Direction.Negate()
	total := core.Vec3{}

	for i := 0; i < samples; i++ {
		sample := light.Sample(hit.Point, sampleRandom)

		cosine := hit.Normal.Dot(sample.Direction)
		if cosine <= 0 {
			continue
		}
		if s.occluded(origin, sample) {
			continue
		}

		contribution := base.Multiply(mat.Diffuse * cosine)

		if mat.Specular > 0 {
			reflected := sample.Direction.Negate().Reflect(hit.Normal)
			highlight := reflected.Dot(toViewer)
			if highlight > 0 {
				spec := mat.Specular * math.Pow(highlight, mat.Shininess)
				contribution = contribution.Add(core.NewVec3(spec, spec, spec))
			}
		}

		total = total.Add(contribution.MultiplyVec(sample.Intensity))
	}

	return total.Multiply(1 / float64(samples))
}

// occluded reports whether anything blocks the shadow ray before it
// reaches the sampled light position.
func (s *Shader) occluded(origin core.Vec3, sample lights.Sample) bool {
	shadowRay := core.NewRay(origin, sample.Direction)
	maxT := sample.Distance
	if !math.IsInf(maxT, 1) {
		maxT -= shadowBias
	}
	_, blocked := s.view.Accel.Hit(shadowRay, shadowBias, maxT)
	return blocked
}
