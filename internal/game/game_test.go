package game

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"globewalk/internal/assets"
	"globewalk/internal/config"
	"globewalk/internal/input"
)

func TestNextState(t *testing.T) {
	tests := []struct {
		current State
		status  assets.Status
		want    State
	}{
		{StateLoading, assets.StatusPending, StateLoading},
		{StateLoading, assets.StatusReady, StateRunning},
		{StateLoading, assets.StatusFailed, StateFailed},
		{StateRunning, assets.StatusFailed, StateRunning},
		{StateFailed, assets.StatusReady, StateFailed},
	}
	for _, tt := range tests {
		if got := nextState(tt.current, tt.status); got != tt.want {
			t.Errorf("nextState(%v, %v) = %v, want %v", tt.current, tt.status, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if StateFailed.String() != "failed" || State(7).String() != "State(7)" {
		t.Errorf("Unexpected strings %q %q", StateFailed, State(7))
	}
}

func TestNewRejectsInvalidScene(t *testing.T) {
	cfg := config.Minimal()
	cfg.Rig.Altitude = -1
	if _, err := New(cfg, Options{}); err == nil {
		t.Error("Expected error for invalid scene")
	}
}

func TestMissingTextureFailsInsteadOfHanging(t *testing.T) {
	cfg := config.Minimal()
	cfg.Sky.Texture = filepath.Join(t.TempDir(), "constellation_figures.jpg")

	g, err := New(cfg, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var seen []State
	g.OnStateChange.AddListener(func(s State) { seen = append(seen, s) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	g.loader.Start(ctx)
	status, _ := g.loader.Wait(ctx)

	g.setState(nextState(g.State(), status))

	if g.State() != StateFailed {
		t.Fatalf("Expected failed state, got %v", g.State())
	}
	if g.Err() == nil {
		t.Error("Failed game should report the asset error")
	}
	if len(seen) != 1 || seen[0] != StateFailed {
		t.Errorf("Expected one failed transition, got %v", seen)
	}

	g.setState(StateFailed)
	if len(seen) != 1 {
		t.Error("Repeated state should not fire the event again")
	}
}

func TestAutopilotPointer(t *testing.T) {
	for _, d := range []time.Duration{0, time.Second, 10 * time.Second, time.Minute} {
		p := autopilotPointer(d)
		if !p.Engaged || p.Y >= 0 {
			t.Errorf("t=%v: autopilot should walk forward, got %+v", d, p)
		}
		if p.X < -0.5 || p.X > 0.5 {
			t.Errorf("t=%v: X out of viewport range: %v", d, p.X)
		}
	}
}

func TestAutopilotPublishesUntilCancelled(t *testing.T) {
	mb := &input.Mailbox{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		autopilot(ctx, mb, time.Millisecond)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for !mb.Sample().Engaged {
		select {
		case <-deadline:
			t.Fatal("Autopilot never published")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Autopilot did not stop on cancel")
	}
}
