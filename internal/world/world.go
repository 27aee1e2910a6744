package world

import (
	"fmt"
	"math"

	"globewalk/internal/assets"
	"globewalk/internal/components"
	"globewalk/internal/config"
	"globewalk/internal/engine"
	"globewalk/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	GlobeShaderVS = "assets/shaders/globe.vs"
	GlobeShaderFS = "assets/shaders/globe.fs"
)

// World is the globe scene graph:
//
//	Globe, Sky, Light
//	Pivot (OrbitWalkController)
//	└── Rig
//	    └── Camera (Camera, OrbitZoom)
//
// New builds the graph without touching the GPU; Initialize attaches models
// and textures once a window exists.
type World struct {
	Config     config.Scene
	Scene      *engine.Scene
	Globe      *engine.GameObject
	Sky        *engine.GameObject
	Light      *engine.GameObject
	Pivot      *engine.GameObject
	Rig        *engine.GameObject
	CameraObj  *engine.GameObject
	Controller *components.OrbitWalkController
	Renderer   *Renderer

	source input.Source
	frame  input.Pointer
}

func New(cfg config.Scene, src input.Source) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", cfg.Name, err)
	}
	w := &World{
		Config: cfg,
		Scene:  engine.NewScene(cfg.Name),
		source: src,
	}
	w.build()
	return w, nil
}

// frameInput hands every component the snapshot taken at the top of the
// frame, so all of them see the same pointer.
func (w *World) frameInput() input.Pointer {
	return w.frame
}

func (w *World) build() {
	cfg := w.Config
	frame := input.SourceFunc(w.frameInput)
	radius := cfg.Globe.Radius

	w.Globe = engine.NewGameObject("Globe")
	w.Globe.Tags = []string{"body"}
	w.Globe.Transform.Scale = uniform(radius)
	w.Scene.AddGameObject(w.Globe)

	w.Sky = engine.NewGameObject("Sky")
	w.Sky.Tags = []string{"backdrop"}
	w.Sky.Transform.Scale = uniform(cfg.Sky.Scale)
	w.Scene.AddGameObject(w.Sky)

	lightColor := toColor(mustColor(cfg.Light.Color))
	if cfg.SunCycle.Enabled {
		w.Light = engine.NewGameObject("Sun")
		w.Light.AddComponent(components.NewSunLight(lightColor, cfg.Light.Ambient, cfg.SunCycle.PeriodSeconds, cfg.SunCycle.Tilt))
	} else {
		w.Light = engine.NewGameObject("Lamp")
		w.Light.Transform.Position = vec(cfg.Light.Position)
		w.Light.AddComponent(components.NewPointLight(lightColor, cfg.Light.Ambient))
	}
	w.Scene.AddGameObject(w.Light)

	w.Pivot = engine.NewGameObject("Pivot")
	w.Controller = components.NewOrbitWalkController(cfg.Motion, frame)
	w.Pivot.AddComponent(w.Controller)
	w.Scene.AddGameObject(w.Pivot)

	// Half a turn about Y points the rig's local +Z away from the center.
	w.Rig = engine.NewGameObject("Rig")
	w.Rig.Transform.Position = rl.Vector3{Z: -cfg.Rig.Altitude * radius}
	w.Rig.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi)
	w.Pivot.AddChild(w.Rig)
	w.Scene.AddGameObject(w.Rig)

	w.CameraObj = engine.NewGameObject("Camera")
	w.CameraObj.Transform.Position = vec(cfg.Rig.CameraOffset)
	w.CameraObj.AddComponent(components.NewCamera(cfg.Rig.FOV, vec(cfg.Rig.CameraTarget), vec(cfg.Rig.CameraUp)))
	w.CameraObj.AddComponent(components.NewOrbitZoom(cfg.Rig.ZoomIn, cfg.Rig.ZoomOut, frame))
	w.Rig.AddChild(w.CameraObj)
	w.Scene.AddGameObject(w.CameraObj)
}

// Initialize creates GPU resources. It needs an open window and the textures
// listed by the scene config already uploaded to tex.
func (w *World) Initialize(tex *assets.Manager) {
	cfg := w.Config
	w.Renderer = NewRenderer()
	w.Renderer.Initialize(GlobeShaderVS, GlobeShaderFS)

	globe := components.NewModelRenderer(
		rl.LoadModelFromMesh(rl.GenMeshSphere(1, cfg.Globe.Rings, cfg.Globe.Slices)),
		rl.White,
	)
	globe.Model.Materials.Maps.Color = toColor(mustColor(cfg.Globe.Color))
	globe.SetShader(w.Renderer.Shader)
	if day, ok := tex.Texture(cfg.Globe.DayTexture); ok {
		globe.SetTexture(int32(rl.MapDiffuse), day)
	}
	if night, ok := tex.Texture(cfg.Globe.NightTexture); ok {
		globe.SetTexture(int32(rl.MapEmission), night)
		w.Renderer.NightSide = true
	}
	w.Globe.AddComponent(globe)

	sky := components.NewModelRenderer(
		rl.LoadModelFromMesh(rl.GenMeshSphere(1, 32, 32)),
		rl.White,
	)
	sky.Inside = true
	if t, ok := tex.Texture(cfg.Sky.Texture); ok {
		sky.SetTexture(int32(rl.MapDiffuse), t)
	}
	w.Sky.AddComponent(sky)

	w.Scene.Start()
}

// Update samples input once, then updates every object in scene order.
func (w *World) Update(deltaTime float32) {
	if w.source != nil {
		w.frame = w.source.Sample()
	} else {
		w.frame = input.Pointer{}
	}
	w.Scene.Update(deltaTime)
}

// Frame returns the pointer snapshot used by the last Update.
func (w *World) Frame() input.Pointer {
	return w.frame
}

func (w *World) ActiveCamera() rl.Camera3D {
	cam := engine.GetComponent[*components.Camera](w.CameraObj)
	if cam == nil {
		return rl.Camera3D{}
	}
	return cam.GetRaylibCamera()
}

func (w *World) ActiveLight() components.Light {
	if l, ok := engine.FindComponent[components.Light](w.Light); ok {
		return l
	}
	return nil
}

// Sun returns the sun-cycle light, or nil for scenes without one.
func (w *World) Sun() *components.SunLight {
	return engine.GetComponent[*components.SunLight](w.Light)
}

// Draw renders one frame of the 3D pass. Call between BeginDrawing and
// EndDrawing.
func (w *World) Draw() {
	if w.Renderer == nil {
		return
	}
	if l := w.ActiveLight(); l != nil {
		w.Renderer.ApplyLight(l.Uniform())
	}
	rl.BeginMode3D(w.ActiveCamera())
	w.Renderer.Draw(w.Scene.Drawables())
	rl.EndMode3D()
}

func (w *World) Unload() {
	if w.Renderer == nil {
		return
	}
	w.Renderer.Unload()
	for _, g := range w.Scene.GameObjects {
		if r := engine.GetComponent[*components.ModelRenderer](g); r != nil {
			r.Unload()
		}
	}
}

func uniform(s float32) rl.Vector3 {
	return rl.Vector3{X: s, Y: s, Z: s}
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func toColor(c config.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// mustColor is only used after Validate has accepted the scene.
func mustColor(hex string) config.RGBA {
	c, err := config.ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
