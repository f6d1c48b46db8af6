package renderer

import (
	"math"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
	"github.com/vkor/go-whitted-raytracer/pkg/scene"
)

// Camera generates primary rays for an image of fixed dimensions. The
// viewing plane sits one unit in front of the eye; its extent is derived
// from the vertical field of view and the aspect ratio.
type Camera struct {
	position   core.Vec3
	forward    core.Vec3
	right      core.Vec3
	up         core.Vec3
	halfWidth  float64
	halfHeight float64
	width      int
	height     int
	parallel   bool
}

// NewCamera creates a camera from the scene's placement config and the
// target image dimensions.
func NewCamera(config scene.CameraConfig, width, height int) *Camera {
	// Yaw 0, pitch 0 looks along +Z with +Y up
	forward := core.NewVec3(
		math.Sin(config.Yaw)*math.Cos(config.Pitch),
		math.Sin(config.Pitch),
		math.Cos(config.Yaw)*math.Cos(config.Pitch),
	)
	right := core.NewVec3(0, 1, 0).Cross(forward).Normalize()
	up := forward.Cross(right)

	halfHeight := math.Tan(config.VFOVDegrees * math.Pi / 360)
	aspect := float64(width) / float64(height)

	return &Camera{
		position:   config.Position,
		forward:    forward,
		right:      right,
		up:         up,
		halfWidth:  halfHeight * aspect,
		halfHeight: halfHeight,
		width:      width,
		height:     height,
		parallel:   config.Projection == scene.ProjectionParallel,
	}
}

// GetRay returns the ray through pixel (i, j) at the sub-pixel offset
// (dx, dy) in [0, 1). Pixel (0, 0) is the top-left corner.
func (c *Camera) GetRay(i, j int, dx, dy float64) core.Ray {
	u := (2*(float64(i)+dx)/float64(c.width) - 1) * c.halfWidth
	v := (1 - 2*(float64(j)+dy)/float64(c.height)) * c.halfHeight

	offset := c.right.Multiply(u).Add(c.up.Multiply(v))
	if c.parallel {
		return core.NewRay(c.position.Add(offset), c.forward)
	}
	// Unit directions keep the fixed tMin bias uniform across pixels
	return core.NewRay(c.position, c.forward.Add(offset).Normalize())
}
