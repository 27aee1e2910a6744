package game

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"globewalk/internal/assets"
	"globewalk/internal/config"
	"globewalk/internal/engine"
	"globewalk/internal/input"
	"globewalk/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type State int

const (
	StateLoading State = iota
	StateRunning
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRunning:
		return "running"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// nextState maps the loader's status onto the game's state. Running and
// failed are terminal.
func nextState(current State, status assets.Status) State {
	if current != StateLoading {
		return current
	}
	switch status {
	case assets.StatusReady:
		return StateRunning
	case assets.StatusFailed:
		return StateFailed
	}
	return StateLoading
}

type Options struct {
	// Autopilot drives the camera from a background goroutine instead of
	// the mouse.
	Autopilot bool
}

type Game struct {
	Config   config.Scene
	World    *world.World
	Textures *assets.Manager
	HUD      *HUD

	OnStateChange engine.EventWithArg[State]

	opts    Options
	loader  *assets.Loader
	state   State
	mouse   *input.Mouse
	mailbox *input.Mailbox
}

func New(cfg config.Scene, opts Options) (*Game, error) {
	g := &Game{
		Config:   cfg,
		Textures: assets.NewManager(),
		HUD:      NewHUD(),
		opts:     opts,
		loader:   assets.NewLoader(cfg.Textures()),
		mouse:    input.NewMouse(),
		mailbox:  &input.Mailbox{},
	}

	var src input.Source = input.SourceFunc(g.samplePointer)
	if opts.Autopilot {
		src = g.mailbox
	}
	w, err := world.New(cfg, src)
	if err != nil {
		return nil, err
	}
	g.World = w

	g.OnStateChange.AddListener(func(s State) {
		log.Printf("Game: %s", s)
	})
	return g, nil
}

func (g *Game) State() State {
	return g.state
}

// Err is the asset error that put the game in StateFailed.
func (g *Game) Err() error {
	return g.loader.Err()
}

// samplePointer reads the mouse, ignoring clicks that land on the HUD.
func (g *Game) samplePointer() input.Pointer {
	p := g.mouse.Sample()
	if g.HUD.Visible && rl.CheckCollisionPointRec(rl.GetMousePosition(), g.HUD.Bounds(g.World)) {
		p.Engaged = false
	}
	return p
}

func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	win := g.Config.Window
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(win.TargetFPS)

	g.loader.Start(ctx)
	defer g.Textures.Unload()
	defer g.World.Unload()

	if g.opts.Autopilot {
		go autopilot(ctx, g.mailbox, time.Second/time.Duration(max(win.TargetFPS, 1)))
	}

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		g.Update()
		g.Draw()
	}

	if g.state == StateFailed {
		return fmt.Errorf("assets: %w", g.loader.Err())
	}
	return nil
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	if s == StateRunning {
		g.Textures.Upload(g.loader.Images())
		g.World.Initialize(g.Textures)
	}
	g.state = s
	g.OnStateChange.Invoke(s)
}

func (g *Game) Update() {
	g.setState(nextState(g.state, g.loader.Poll()))
	if g.state != StateRunning {
		return
	}

	if rl.IsWindowResized() {
		log.Printf("Window: resized to %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.HUD.Visible = !g.HUD.Visible
	}

	g.World.Update(rl.GetFrameTime())
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.NewColor(4, 4, 10, 255))

	switch g.state {
	case StateLoading:
		drawCentered("Loading textures...", 24, colorTextSecondary)
	case StateFailed:
		drawCentered("Could not load scene assets", 24, rl.Red)
		drawCenteredAt(g.loader.Err().Error(), 16, colorTextSecondary, 36)
	case StateRunning:
		g.World.Draw()
		g.HUD.Draw(g.World)
	}
}

func drawCentered(text string, size int32, color rl.Color) {
	drawCenteredAt(text, size, color, 0)
}

func drawCenteredAt(text string, size int32, color rl.Color, dy int32) {
	w := rl.MeasureText(text, size)
	x := int32(rl.GetScreenWidth())/2 - w/2
	y := int32(rl.GetScreenHeight())/2 - size/2 + dy
	rl.DrawText(text, x, y, size, color)
}

// autopilotPointer is a slow forward walk that weaves left and right.
func autopilotPointer(t time.Duration) input.Pointer {
	s := t.Seconds()
	return input.Pointer{
		X:       float32(0.15 * math.Sin(s*0.4)),
		Y:       -0.35,
		Engaged: true,
	}
}

func autopilot(ctx context.Context, mb *input.Mailbox, interval time.Duration) {
	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			mb.Publish(autopilotPointer(now.Sub(start)))
		}
	}
}
