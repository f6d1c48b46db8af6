package scene

import (
	"fmt"

	"github.com/vkor/go-whitted-raytracer/pkg/bvh"
	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// Command is one discrete scene mutation, as submitted by the
// interactive front end between frames.
type Command struct {
	Action string  `json:"action"`
	Object int     `json:"object,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Z      float64 `json:"z,omitempty"`
	Angle  float64 `json:"angle,omitempty"`
	Factor float64 `json:"factor,omitempty"`
	Value  int     `json:"value,omitempty"`
}

// Command actions understood by Apply
const (
	ActionMoveObject     = "move-object"
	ActionRotateObject   = "rotate-object"
	ActionScaleObject    = "scale-object"
	ActionMoveLight      = "move-light"
	ActionMoveCamera     = "move-camera"
	ActionTurnCamera     = "turn-camera"
	ActionToggleAA       = "toggle-antialiasing"
	ActionToggleShadows  = "toggle-soft-shadows"
	ActionToggleGloss    = "toggle-glossy"
	ActionToggleVolume   = "toggle-volume-kind"
	ActionSetDepth       = "set-depth"
	ActionSetSamples     = "set-samples"
	ActionSetVolumeLevel = "set-volume-level"
)

// Apply executes a command against the scene. Every successful command
// bumps the scene version and so invalidates the cached hierarchy.
func (s *Scene) Apply(cmd Command) error {
	switch cmd.Action {
	case ActionMoveObject:
		return s.MutateObject(cmd.Object, func(o *Object) {
			o.Move(core.NewVec3(cmd.X, cmd.Y, cmd.Z))
		})
	case ActionRotateObject:
		axis := core.NewVec3(cmd.X, cmd.Y, cmd.Z)
		if axis.Length() == 0 {
			return fmt.Errorf("rotate-object requires a non-zero axis")
		}
		return s.MutateObject(cmd.Object, func(o *Object) {
			o.Rotate(axis, cmd.Angle)
		})
	case ActionScaleObject:
		if cmd.Factor == 0 {
			return fmt.Errorf("scale-object requires a non-zero factor")
		}
		return s.MutateObject(cmd.Object, func(o *Object) {
			o.Scale(cmd.Factor)
		})
	case ActionMoveLight:
		return s.MoveLight(cmd.Object, core.NewVec3(cmd.X, cmd.Y, cmd.Z))
	case ActionMoveCamera:
		s.MoveCamera(core.NewVec3(cmd.X, cmd.Y, cmd.Z))
		return nil
	case ActionTurnCamera:
		s.TurnCamera(cmd.X, cmd.Y)
		return nil
	case ActionToggleAA:
		s.UpdateSettings(func(st *Settings) { st.Antialiasing = !st.Antialiasing })
		return nil
	case ActionToggleShadows:
		s.UpdateSettings(func(st *Settings) { st.SoftShadows = !st.SoftShadows })
		return nil
	case ActionToggleGloss:
		s.UpdateSettings(func(st *Settings) { st.GlossyReflection = !st.GlossyReflection })
		return nil
	case ActionToggleVolume:
		s.UpdateSettings(func(st *Settings) {
			if st.VolumeKind == bvh.VolumeBox {
				st.VolumeKind = bvh.VolumeSphere
			} else {
				st.VolumeKind = bvh.VolumeBox
			}
		})
		return nil
	case ActionSetDepth:
		if cmd.Value < 0 {
			return fmt.Errorf("set-depth requires a non-negative value, got %d", cmd.Value)
		}
		s.UpdateSettings(func(st *Settings) { st.MaxDepth = cmd.Value })
		return nil
	case ActionSetSamples:
		if cmd.Value < 1 {
			return fmt.Errorf("set-samples requires a positive value, got %d", cmd.Value)
		}
		s.UpdateSettings(func(st *Settings) { st.SamplesPerPixel = cmd.Value })
		return nil
	case ActionSetVolumeLevel:
		s.UpdateSettings(func(st *Settings) { st.VolumesDepth = cmd.Value })
		return nil
	default:
		return fmt.Errorf("unknown scene command %q", cmd.Action)
	}
}
