// Package config describes a globe scene: window, bodies, camera rig, motion
// constants and the optional sun cycle. Scenes start from a named preset and
// may be overridden field by field from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Scene struct {
	Name     string   `json:"name"`
	Window   Window   `json:"window"`
	Globe    Globe    `json:"globe"`
	Sky      Sky      `json:"sky"`
	Rig      Rig      `json:"rig"`
	Motion   Motion   `json:"motion"`
	Light    Light    `json:"light"`
	SunCycle SunCycle `json:"sunCycle"`
}

type Window struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	TargetFPS int32  `json:"targetFps"`
	Title     string `json:"title"`
}

type Globe struct {
	Radius       float32 `json:"radius"`
	Rings        int     `json:"rings"`
	Slices       int     `json:"slices"`
	Color        string  `json:"color"`
	DayTexture   string  `json:"dayTexture,omitempty"`
	NightTexture string  `json:"nightTexture,omitempty"`
}

type Sky struct {
	Texture string  `json:"texture,omitempty"`
	Scale   float32 `json:"scale"`
}

// Rig places the camera above the globe. Offsets and targets are expressed
// in the rig's local frame, where +Z is the outward surface normal.
type Rig struct {
	Altitude     float32    `json:"altitude"` // in globe radii
	CameraOffset [3]float32 `json:"cameraOffset"`
	CameraTarget [3]float32 `json:"cameraTarget"`
	CameraUp     [3]float32 `json:"cameraUp"`
	FOV          float32    `json:"fov"`
	ZoomIn       float32    `json:"zoomIn"`
	ZoomOut      float32    `json:"zoomOut"`
}

// Motion holds the per-frame constants of the orbit-walk controller.
// Speeds are radians per frame.
type Motion struct {
	MaxWalkSpeed float64 `json:"maxWalkSpeed"`
	MaxTurnSpeed float64 `json:"maxTurnSpeed"`
	Friction     float64 `json:"friction"`
	WalkDelta    float64 `json:"walkDelta"`
	TurnDelta    float64 `json:"turnDelta"`
	WalkGain     float64 `json:"walkGain"`
	TurnGain     float64 `json:"turnGain"`
}

type Light struct {
	Position [3]float32 `json:"position"`
	Color    string     `json:"color"`
	Ambient  float32    `json:"ambient"`
}

type SunCycle struct {
	Enabled       bool    `json:"enabled"`
	PeriodSeconds float32 `json:"periodSeconds"`
	Tilt          float32 `json:"tilt"` // radians
}

const charScale = 0.05

// Minimal is the plain blue globe under a constellation sky.
func Minimal() Scene {
	return Scene{
		Name: "minimal",
		Window: Window{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			Title:     "globewalk",
		},
		Globe: Globe{
			Radius: 1,
			Rings:  128,
			Slices: 128,
			Color:  "#021080",
		},
		Sky: Sky{
			Texture: "assets/img/constellation_figures.jpg",
			Scale:   5,
		},
		Rig: Rig{
			Altitude:     1.0001,
			CameraOffset: [3]float32{-10 * charScale, 0, 5 * charScale},
			CameraTarget: [3]float32{0.004, 0, 0},
			CameraUp:     [3]float32{0, 0, 1},
			FOV:          75,
			ZoomIn:       0.9,
			ZoomOut:      1.1,
		},
		Motion: Motion{
			MaxWalkSpeed: 0.01,
			MaxTurnSpeed: 0.01,
			Friction:     0.13,
			WalkDelta:    0.00001,
			TurnDelta:    0.0001,
			WalkGain:     charScale * 0.2,
			TurnGain:     0.1,
		},
		Light: Light{
			Position: [3]float32{0, 0, 3},
			Color:    "#fff0f0",
			Ambient:  0.08,
		},
	}
}

// Earth is the textured globe with day and night maps lit by a moving sun.
func Earth() Scene {
	s := Minimal()
	s.Name = "earth"
	s.Globe.Color = "#ffffff"
	s.Globe.DayTexture = "assets/img/earth_day.jpg"
	s.Globe.NightTexture = "assets/img/earth_night.jpg"
	s.Sky.Texture = "assets/img/starfield.jpg"
	s.Rig.Altitude = 1.002
	s.Rig.CameraOffset = [3]float32{-0.3, 0, 0.12}
	s.Rig.CameraTarget = [3]float32{0.05, 0, 0}
	s.Rig.FOV = 60
	s.Motion.MaxWalkSpeed = 0.005
	s.Motion.MaxTurnSpeed = 0.02
	s.Motion.Friction = 0.08
	s.Motion.WalkGain = 0.005
	s.Light.Color = "#ffffff"
	s.Light.Ambient = 0.02
	s.SunCycle = SunCycle{
		Enabled:       true,
		PeriodSeconds: 120,
		Tilt:          0.41,
	}
	return s
}

var presets = map[string]func() Scene{
	"minimal": Minimal,
	"earth":   Earth,
}

// Preset returns the named built-in scene.
func Preset(name string) (Scene, error) {
	fn, ok := presets[name]
	if !ok {
		return Scene{}, fmt.Errorf("unknown scene %q (want one of %s)", name, strings.Join(PresetNames(), ", "))
	}
	return fn(), nil
}

// PresetNames lists built-in scene names in sorted order.
func PresetNames() []string {
	return []string{"earth", "minimal"}
}

// Load overlays the JSON file at path onto base. Fields absent from the file
// keep their base values.
func Load(path string, base Scene) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read config: %w", err)
	}
	s := base
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Validate reports every problem with the scene joined into one error.
func (s Scene) Validate() error {
	var errs []error
	m := s.Motion
	if m.Friction <= 0 || m.Friction >= 1 {
		errs = append(errs, fmt.Errorf("motion.friction must be in (0, 1), got %g", m.Friction))
	}
	if m.MaxWalkSpeed <= 0 {
		errs = append(errs, fmt.Errorf("motion.maxWalkSpeed must be positive, got %g", m.MaxWalkSpeed))
	}
	if m.MaxTurnSpeed <= 0 {
		errs = append(errs, fmt.Errorf("motion.maxTurnSpeed must be positive, got %g", m.MaxTurnSpeed))
	}
	if m.WalkDelta < 0 || m.TurnDelta < 0 {
		errs = append(errs, errors.New("motion snap thresholds must not be negative"))
	}
	if s.Globe.Radius <= 0 {
		errs = append(errs, fmt.Errorf("globe.radius must be positive, got %g", s.Globe.Radius))
	}
	if s.Globe.Rings < 3 || s.Globe.Slices < 3 {
		errs = append(errs, errors.New("globe needs at least 3 rings and slices"))
	}
	if s.Rig.Altitude <= 0 {
		errs = append(errs, fmt.Errorf("rig.altitude must be positive, got %g", s.Rig.Altitude))
	}
	if s.Rig.CameraUp == [3]float32{} {
		errs = append(errs, errors.New("rig.cameraUp must not be zero"))
	}
	if s.Rig.ZoomIn <= 0 || s.Rig.ZoomOut <= 0 {
		errs = append(errs, errors.New("rig zoom factors must be positive"))
	}
	if s.Sky.Scale <= s.Globe.Radius {
		errs = append(errs, fmt.Errorf("sky.scale %g must exceed globe radius %g", s.Sky.Scale, s.Globe.Radius))
	}
	if s.SunCycle.Enabled && s.SunCycle.PeriodSeconds <= 0 {
		errs = append(errs, errors.New("sunCycle.periodSeconds must be positive when enabled"))
	}
	if s.SunCycle.Enabled && s.Globe.DayTexture == "" {
		errs = append(errs, errors.New("sunCycle requires globe.dayTexture"))
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, errors.New("window size must be positive"))
	}
	for field, hex := range map[string]string{"globe.color": s.Globe.Color, "light.color": s.Light.Color} {
		if _, err := ParseColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}
	return errors.Join(errs...)
}

// Textures lists the image files the scene needs, without duplicates, in
// sky, day, night order.
func (s Scene) Textures() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, p := range []string{s.Sky.Texture, s.Globe.DayTexture, s.Globe.NightTexture} {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}

// RGBA is a color with 8-bit channels.
type RGBA struct {
	R, G, B, A uint8
}

// ParseColor accepts "#rrggbb" or "#rrggbbaa".
func ParseColor(hex string) (RGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 && len(h) != 8 {
		return RGBA{}, fmt.Errorf("malformed color %q", hex)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("malformed color %q", hex)
	}
	return RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
