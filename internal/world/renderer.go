package world

import (
	"unsafe"

	"globewalk/internal/components"
	"globewalk/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer owns the globe lighting shader and submits drawables.
type Renderer struct {
	Shader rl.Shader
	// NightSide blends the night texture into the unlit hemisphere.
	NightSide bool
	locs      map[string]int32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var globeUniforms = []string{"lightPos", "lightDir", "lightIsPoint", "lightColor", "ambient", "useNight"}

func (r *Renderer) Initialize(vsPath, fsPath string) {
	r.Shader = rl.LoadShader(vsPath, fsPath)

	// raylib binds each material map to the sampler at the matching shader
	// location, so route the emission map to the night sampler.
	locs := unsafe.Slice(r.Shader.Locs, rl.ShaderLocMapCubemap+1)
	locs[rl.ShaderLocMapEmission] = rl.GetShaderLocation(r.Shader, "nightMap")

	r.locs = make(map[string]int32, len(globeUniforms))
	for _, name := range globeUniforms {
		r.locs[name] = rl.GetShaderLocation(r.Shader, name)
	}
}

// ApplyLight uploads the light for this frame.
func (r *Renderer) ApplyLight(u components.LightUniform) {
	for name, value := range lightValues(u, r.NightSide) {
		loc, ok := r.locs[name]
		if !ok || loc < 0 {
			continue
		}
		kind := rl.ShaderUniformFloat
		if len(value) == 3 {
			kind = rl.ShaderUniformVec3
		}
		rl.SetShaderValue(r.Shader, loc, value, kind)
	}
}

// lightValues flattens a light into the globe shader's uniform values.
func lightValues(u components.LightUniform, night bool) map[string][]float32 {
	flag := func(b bool) []float32 {
		if b {
			return []float32{1}
		}
		return []float32{0}
	}
	return map[string][]float32{
		"lightPos":     {u.Position.X, u.Position.Y, u.Position.Z},
		"lightDir":     {u.Direction.X, u.Direction.Y, u.Direction.Z},
		"lightIsPoint": flag(u.Point),
		"lightColor":   {u.Color[0], u.Color[1], u.Color[2]},
		"ambient":      {u.Ambient},
		"useNight":     flag(night),
	}
}

func (r *Renderer) Draw(drawables []engine.Drawable) {
	for _, d := range drawables {
		d.Draw()
	}
}

func (r *Renderer) Unload() {
	rl.UnloadShader(r.Shader)
}
