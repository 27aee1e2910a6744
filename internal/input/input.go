// Package input turns raw mouse state into a per-frame Pointer snapshot.
//
// The frame loop pulls one snapshot at the top of each frame through a
// Source; nothing else in the program reads the mouse directly.
package input

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pointer is the mouse state sampled for one frame. X and Y are centered on
// the viewport and roughly span [-0.5, 0.5]; Y grows downward. They are not
// clamped when the cursor leaves the window.
type Pointer struct {
	X, Y    float32
	Engaged bool
	Wheel   float32
}

type Source interface {
	Sample() Pointer
}

// SourceFunc adapts a function to a Source.
type SourceFunc func() Pointer

func (f SourceFunc) Sample() Pointer { return f() }

// Normalize maps a pixel position to viewport-centered coordinates.
func Normalize(px, py, width, height float32) (x, y float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return px/width - 0.5, py/height - 0.5
}

// Mouse samples the raylib window. It must be used from the thread that owns
// the window.
type Mouse struct {
	Button rl.MouseButton
}

func NewMouse() *Mouse {
	return &Mouse{Button: rl.MouseLeftButton}
}

func (m *Mouse) Sample() Pointer {
	pos := rl.GetMousePosition()
	x, y := Normalize(pos.X, pos.Y, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	return Pointer{
		X:       x,
		Y:       y,
		Engaged: rl.IsMouseButtonDown(m.Button),
		Wheel:   rl.GetMouseWheelMove(),
	}
}

// Mailbox holds the latest Pointer published by another goroutine, for ports
// where input arrives off the frame thread. Wheel movement accumulates until
// the next Sample.
type Mailbox struct {
	mu     sync.Mutex
	latest Pointer
}

func (m *Mailbox) Publish(p Pointer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wheel := m.latest.Wheel + p.Wheel
	m.latest = p
	m.latest.Wheel = wheel
}

func (m *Mailbox) Sample() Pointer {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.latest
	m.latest.Wheel = 0
	return p
}
