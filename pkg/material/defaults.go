package material

import (
	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// Matte creates a diffuse-only material of the given color
func Matte(color core.Vec3) *core.Material {
	return &core.Material{
		Texture:   NewSolidColor(color),
		Ambient:   0.7,
		Diffuse:   0.5,
		Specular:  0,
		Shininess: 1,
	}
}

// Shiny creates a Phong material with a specular highlight
func Shiny(color core.Vec3, specular, shininess float64) *core.Material {
	m := Matte(color)
	m.Specular = specular
	m.Shininess = shininess
	return m
}

// Mirror creates a reflective Phong material. Glossiness > 0 blurs the
// reflection.
func Mirror(color core.Vec3, reflectivity, glossiness float64) *core.Material {
	m := Shiny(color, 0.5, 64)
	m.Reflectivity = reflectivity
	m.Glossiness = glossiness
	return m
}
