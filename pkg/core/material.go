package core

// Texture supplies a surface color at a point
type Texture interface {
	ColorAt(point Vec3) Vec3
}

// Material holds Phong reflectance coefficients plus optional mirror
// reflection parameters. Glossiness > 0 turns the ideal reflection into a
// cone of perturbed rays.
type Material struct {
	Texture      Texture // Surface color source
	Ambient      float64 // Ambient coefficient
	Diffuse      float64 // Lambertian coefficient
	Specular     float64 // Phong specular coefficient
	Shininess    float64 // Phong exponent
	Reflectivity float64 // 0 = matte, 1 = perfect mirror
	Glossiness   float64 // Reflection cone radius, 0 = sharp mirror
}

// ColorAt returns the material's surface color at a point
func (m *Material) ColorAt(point Vec3) Vec3 {
	if m.Texture == nil {
		return Vec3{}
	}
	return m.Texture.ColorAt(point)
}

// IsReflective reports whether the material spawns reflection rays
func (m *Material) IsReflective() bool {
	return m.Reflectivity > 0
}
