// Package material provides texture implementations for surface colors.
package material

import (
	"math"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// SolidColor provides a uniform color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// ColorAt returns the solid color regardless of position
func (s *SolidColor) ColorAt(point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker provides a procedural 3D checkerboard pattern
type Checker struct {
	Scale float64 // Edge length of one check
	Odd   core.Vec3
	Even  core.Vec3
}

// NewChecker creates a new checker texture with the given check size
func NewChecker(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// ColorAt alternates the two colors in a 3D grid
func (c *Checker) ColorAt(point core.Vec3) core.Vec3 {
	sum := int(math.Floor(point.X/c.Scale)) +
		int(math.Floor(point.Y/c.Scale)) +
		int(math.Floor(point.Z/c.Scale))
	if sum%2 == 0 {
		return c.Even
	}
	return c.Odd
}
