package material

import (
	"testing"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

func TestSolidColor(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	texture := NewSolidColor(red)

	points := []core.Vec3{{}, {X: 100}, {X: -3, Y: 7, Z: 0.5}}
	for _, p := range points {
		if got := texture.ColorAt(p); got != red {
			t.Errorf("ColorAt(%v) = %v, expected %v", p, got, red)
		}
	}
}

func TestCheckerAlternates(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewChecker(1, even, odd)

	tests := []struct {
		point    core.Vec3
		expected core.Vec3
	}{
		{core.NewVec3(0.5, 0.5, 0.5), even}, // 0+0+0
		{core.NewVec3(1.5, 0.5, 0.5), odd},  // 1+0+0
		{core.NewVec3(1.5, 1.5, 0.5), even}, // 1+1+0
		{core.NewVec3(1.5, 1.5, 1.5), odd},  // 1+1+1
		{core.NewVec3(-0.5, 0.5, 0.5), odd}, // -1+0+0
	}
	for _, tt := range tests {
		if got := checker.ColorAt(tt.point); got != tt.expected {
			t.Errorf("ColorAt(%v) = %v, expected %v", tt.point, got, tt.expected)
		}
	}
}

func TestCheckerScale(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewChecker(2, even, odd)

	// Both points fall in the same 2-unit cell
	a := checker.ColorAt(core.NewVec3(0.1, 0.1, 0.1))
	b := checker.ColorAt(core.NewVec3(1.9, 1.9, 1.9))
	if a != b {
		t.Error("points inside one cell must share a color")
	}
	// Crossing one cell boundary flips the color
	if checker.ColorAt(core.NewVec3(2.1, 0.1, 0.1)) == a {
		t.Error("crossing a cell boundary must flip the color")
	}
}

func TestMaterialConstructors(t *testing.T) {
	color := core.NewVec3(0.9, 0.2, 0.2)

	matte := Matte(color)
	if matte.IsReflective() || matte.Specular != 0 {
		t.Error("matte must be neither specular nor reflective")
	}
	if got := matte.ColorAt(core.Vec3{}); got != color {
		t.Errorf("matte color = %v, expected %v", got, color)
	}

	shiny := Shiny(color, 0.6, 32)
	if shiny.Specular != 0.6 || shiny.Shininess != 32 {
		t.Errorf("shiny coefficients: %+v", shiny)
	}

	mirror := Mirror(color, 0.8, 0.05)
	if !mirror.IsReflective() || mirror.Reflectivity != 0.8 || mirror.Glossiness != 0.05 {
		t.Errorf("mirror coefficients: %+v", mirror)
	}
}
