package input

import (
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		px, py, w, h float32
		x, y         float32
	}{
		{640, 360, 1280, 720, 0, 0},
		{0, 0, 1280, 720, -0.5, -0.5},
		{1280, 720, 1280, 720, 0.5, 0.5},
		{1920, 0, 1280, 720, 1, -0.5}, // outside the window is not clamped
		{10, 10, 0, 720, 0, 0},
	}
	for _, tt := range tests {
		x, y := Normalize(tt.px, tt.py, tt.w, tt.h)
		if x != tt.x || y != tt.y {
			t.Errorf("Normalize(%v, %v, %v, %v) = (%v, %v), want (%v, %v)",
				tt.px, tt.py, tt.w, tt.h, x, y, tt.x, tt.y)
		}
	}
}

func TestSourceFunc(t *testing.T) {
	var src Source = SourceFunc(func() Pointer { return Pointer{X: 0.25, Engaged: true} })
	if p := src.Sample(); p.X != 0.25 || !p.Engaged {
		t.Errorf("Unexpected sample %+v", p)
	}
}

func TestMailboxKeepsLatestAndAccumulatesWheel(t *testing.T) {
	var m Mailbox

	m.Publish(Pointer{X: 0.1, Wheel: 1})
	m.Publish(Pointer{X: 0.2, Engaged: true, Wheel: 2})

	p := m.Sample()
	if p.X != 0.2 || !p.Engaged {
		t.Errorf("Expected latest position, got %+v", p)
	}
	if p.Wheel != 3 {
		t.Errorf("Expected accumulated wheel 3, got %v", p.Wheel)
	}

	p = m.Sample()
	if p.Wheel != 0 {
		t.Errorf("Wheel should reset after sampling, got %v", p.Wheel)
	}
	if p.X != 0.2 {
		t.Errorf("Position should persist between samples, got %v", p.X)
	}
}

func TestMailboxConcurrentPublish(t *testing.T) {
	var m Mailbox
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Publish(Pointer{Wheel: 1})
			}
		}()
	}
	wg.Wait()

	if p := m.Sample(); p.Wheel != 800 {
		t.Errorf("Expected wheel 800, got %v", p.Wheel)
	}
}
