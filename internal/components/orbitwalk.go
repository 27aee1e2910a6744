package components

import (
	"math"

	"globewalk/internal/config"
	"globewalk/internal/engine"
	"globewalk/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// WalkAxis is the pivot-local axis that carries the rig forward.
	WalkAxis = rl.Vector3{X: 0, Y: 1, Z: 0}
	// TurnAxis is the pivot-local axis through the rig, so rotating about it
	// turns the rig in place.
	TurnAxis = rl.Vector3{X: 0, Y: 0, Z: -1}
)

// MotionState is carried from frame to frame. WalkSpeed stays within
// [0, MaxWalkSpeed] and |TurnSpeed| within MaxTurnSpeed.
type MotionState struct {
	WalkSpeed float64
	TurnSpeed float64
}

// OrbitWalkController rotates its GameObject (the orbit pivot) so a child
// rig walks over the surface of a sphere. Speeds are per frame: decay does
// not depend on elapsed time, so motion scales with frame rate.
type OrbitWalkController struct {
	engine.BaseComponent
	Params config.Motion
	State  MotionState
	Source input.Source
}

func NewOrbitWalkController(params config.Motion, src input.Source) *OrbitWalkController {
	return &OrbitWalkController{
		Params: params,
		Source: src,
	}
}

func (c *OrbitWalkController) Update(deltaTime float32) {
	if c.Source == nil {
		c.Advance(input.Pointer{}, deltaTime)
		return
	}
	c.Advance(c.Source.Sample(), deltaTime)
}

// Advance runs one frame of the controller: integrate input, apply friction,
// then rotate the pivot by the resulting speeds. dt is accepted for the
// Component contract but does not scale the update.
func (c *OrbitWalkController) Advance(p input.Pointer, _ float32) {
	c.integrate(p)
	c.decay()

	g := c.GetGameObject()
	if g == nil {
		return
	}
	g.RotateOnAxis(WalkAxis, float32(c.State.WalkSpeed))
	g.RotateOnAxis(TurnAxis, float32(c.State.TurnSpeed))
}

// integrate folds an engaged pointer into the speeds. Pointing toward the
// top of the viewport (negative Y) walks forward.
func (c *OrbitWalkController) integrate(p input.Pointer) {
	if !p.Engaged {
		return
	}
	c.State.WalkSpeed += -c.Params.WalkGain * float64(p.Y)
	if c.State.WalkSpeed > c.Params.MaxWalkSpeed {
		c.State.WalkSpeed = c.Params.MaxWalkSpeed
	}
	c.State.TurnSpeed = -c.Params.TurnGain * float64(p.X)
}

func (c *OrbitWalkController) decay() {
	keep := 1 - c.Params.Friction

	c.State.WalkSpeed *= keep
	if c.State.WalkSpeed < c.Params.WalkDelta {
		c.State.WalkSpeed = 0
	}

	c.State.TurnSpeed *= keep
	switch abs := math.Abs(c.State.TurnSpeed); {
	case abs < c.Params.TurnDelta:
		c.State.TurnSpeed = 0
	case abs > c.Params.MaxTurnSpeed:
		c.State.TurnSpeed = math.Copysign(c.Params.MaxTurnSpeed, c.State.TurnSpeed)
	}
}

// Moving reports whether either speed is non-zero.
func (c *OrbitWalkController) Moving() bool {
	return c.State.WalkSpeed != 0 || c.State.TurnSpeed != 0
}
