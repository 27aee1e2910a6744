package game

import (
	"fmt"
	"math"

	"globewalk/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 200)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

const (
	hudX      = 10
	hudY      = 10
	hudWidth  = 260
	hudLine   = 22
	hudMargin = 8
)

// HUD is the raygui overlay with motion readouts and live controls.
type HUD struct {
	Visible bool
	styled  bool
}

func NewHUD() *HUD {
	return &HUD{Visible: true}
}

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Bounds is the screen area the HUD occupies for a world.
func (h *HUD) Bounds(w *world.World) rl.Rectangle {
	rows := len(h.lines(w)) + 1 // friction slider
	if w.Sun() != nil {
		rows++
	}
	return rl.Rectangle{
		X:      hudX,
		Y:      hudY,
		Width:  hudWidth,
		Height: float32(rows*hudLine + 2*hudMargin),
	}
}

// lines are the read-only rows of the panel.
func (h *HUD) lines(w *world.World) []string {
	s := w.Controller.State
	lines := []string{
		fmt.Sprintf("scene   %s", w.Config.Name),
		fmt.Sprintf("walk    %.5f / %.5f", s.WalkSpeed, w.Controller.Params.MaxWalkSpeed),
		fmt.Sprintf("turn    %+.5f / %.5f", s.TurnSpeed, w.Controller.Params.MaxTurnSpeed),
	}
	if sun := w.Sun(); sun != nil {
		lines = append(lines, fmt.Sprintf("sun     %3.0f°", sun.Angle()*180/math.Pi))
	}
	lines = append(lines, "hold LMB to walk, wheel to zoom, F1 hides")
	return lines
}

func (h *HUD) Draw(w *world.World) {
	if !h.Visible {
		return
	}
	if !h.styled {
		initRayguiStyle()
		h.styled = true
	}

	bounds := h.Bounds(w)
	rl.DrawRectangleRec(bounds, colorBgPanel)

	y := bounds.Y + hudMargin
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: bounds.X + hudMargin, Y: y, Width: bounds.Width - 2*hudMargin, Height: hudLine - 4}
		y += hudLine
		return r
	}

	for _, line := range h.lines(w) {
		gui.Label(row(), line)
	}

	friction := &w.Controller.Params.Friction
	r := row()
	r.X += 60
	r.Width -= 110
	*friction = float64(gui.Slider(r, "friction", fmt.Sprintf("%.2f", *friction), float32(*friction), 0.01, 0.5))

	if sun := w.Sun(); sun != nil {
		r := row()
		r.Width, r.Height = 16, 16
		sun.Paused = !gui.CheckBox(r, "sun cycle", !sun.Paused)
	}

	rl.DrawFPS(int32(rl.GetScreenWidth())-90, hudY)
}
