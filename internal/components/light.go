package components

import (
	"math"

	"globewalk/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LightUniform is what the globe shader needs to know about the active light.
type LightUniform struct {
	Point     bool
	Position  rl.Vector3 // used when Point
	Direction rl.Vector3 // direction light travels, used when !Point
	Color     [3]float32
	Ambient   float32
}

type Light interface {
	Uniform() LightUniform
}

type PointLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	Ambient   float32
}

func NewPointLight(color rl.Color, ambient float32) *PointLight {
	return &PointLight{
		Color:     color,
		Intensity: 1.0,
		Ambient:   ambient,
	}
}

func (p *PointLight) GetPosition() rl.Vector3 {
	if g := p.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return rl.Vector3Zero()
}

func (p *PointLight) Uniform() LightUniform {
	return LightUniform{
		Point:    true,
		Position: p.GetPosition(),
		Color:    colorFloat(p.Color, p.Intensity),
		Ambient:  p.Ambient,
	}
}

// SunLight is a directional light that circles the globe once per Period
// seconds on an orbit tilted by Tilt radians.
type SunLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	Ambient   float32
	Period    float32
	Tilt      float32
	Paused    bool
	angle     float64
}

func NewSunLight(color rl.Color, ambient, period, tilt float32) *SunLight {
	return &SunLight{
		Color:     color,
		Intensity: 1.0,
		Ambient:   ambient,
		Period:    period,
		Tilt:      tilt,
	}
}

func (s *SunLight) Update(deltaTime float32) {
	if s.Paused || s.Period <= 0 {
		return
	}
	s.angle += 2 * math.Pi * float64(deltaTime) / float64(s.Period)
	s.angle = math.Mod(s.angle, 2*math.Pi)
}

// Angle is the sun's position along its orbit in [0, 2π).
func (s *SunLight) Angle() float64 {
	return s.angle
}

// SunPosition is the unit vector from the globe center toward the sun.
func (s *SunLight) SunPosition() rl.Vector3 {
	sinA, cosA := math.Sincos(s.angle)
	sinT, cosT := math.Sincos(float64(s.Tilt))
	return rl.Vector3{
		X: float32(cosA),
		Y: float32(sinA * sinT),
		Z: float32(sinA * cosT),
	}
}

// Direction is the direction sunlight travels.
func (s *SunLight) Direction() rl.Vector3 {
	return rl.Vector3Negate(s.SunPosition())
}

func (s *SunLight) Uniform() LightUniform {
	return LightUniform{
		Direction: s.Direction(),
		Color:     colorFloat(s.Color, s.Intensity),
		Ambient:   s.Ambient,
	}
}

func colorFloat(c rl.Color, intensity float32) [3]float32 {
	return [3]float32{
		float32(c.R) / 255.0 * intensity,
		float32(c.G) / 255.0 * intensity,
		float32(c.B) / 255.0 * intensity,
	}
}
