package components

import (
	"globewalk/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera renders from its GameObject's world position. Target and Up are
// given in the parent's frame so the view stays fixed relative to the rig
// the camera rides on.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Target     rl.Vector3
	Up         rl.Vector3
	Projection rl.CameraProjection
}

func NewCamera(fov float32, target, up rl.Vector3) *Camera {
	return &Camera{
		FOV:        fov,
		Target:     target,
		Up:         up,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	target, up := c.Target, c.Up
	if g.Parent != nil {
		target = g.Parent.TransformPoint(c.Target)
		up = g.Parent.TransformDirection(c.Up)
	}

	return rl.Camera3D{
		Position:   g.WorldPosition(),
		Target:     target,
		Up:         rl.Vector3Normalize(up),
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
