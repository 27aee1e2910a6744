package components

import (
	"globewalk/internal/engine"
	"globewalk/internal/input"
)

// OrbitZoom scales its GameObject's local offset from the parent when the
// wheel moves: closer on wheel-up, farther on wheel-down.
type OrbitZoom struct {
	engine.BaseComponent
	In     float32
	Out    float32
	Source input.Source
}

func NewOrbitZoom(in, out float32, src input.Source) *OrbitZoom {
	return &OrbitZoom{In: in, Out: out, Source: src}
}

func (z *OrbitZoom) Update(deltaTime float32) {
	if z.Source == nil {
		return
	}
	z.Apply(z.Source.Sample().Wheel)
}

func (z *OrbitZoom) Apply(wheel float32) {
	g := z.GetGameObject()
	if g == nil {
		return
	}
	var factor float32
	switch {
	case wheel > 0:
		factor = z.In
	case wheel < 0:
		factor = z.Out
	default:
		return
	}
	p := &g.Transform.Position
	p.X *= factor
	p.Y *= factor
	p.Z *= factor
}
