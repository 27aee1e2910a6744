package components

import (
	"globewalk/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cullFront int32 = 0
	cullBack  int32 = 1
)

type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Color rl.Color
	// Inside draws back faces only, for a sphere seen from within.
	Inside bool
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

func (m *ModelRenderer) SetShader(shader rl.Shader) {
	m.Model.Materials.Shader = shader
}

func (m *ModelRenderer) SetTexture(mapType int32, texture rl.Texture2D) {
	rl.SetMaterialTexture(m.Model.Materials, mapType, texture)
}

// WorldMatrix combines the GameObject's world scale, rotation and position.
func (m *ModelRenderer) WorldMatrix() rl.Matrix {
	g := m.GetGameObject()
	if g == nil {
		return rl.MatrixIdentity()
	}

	scale := g.WorldScale()
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	rotMatrix := rl.QuaternionToMatrix(g.WorldRotation())
	pos := g.WorldPosition()
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// scale -> rotate -> translate
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	m.Model.Transform = m.WorldMatrix()
	if m.Inside {
		rl.SetCullFace(cullFront)
		defer rl.SetCullFace(cullBack)
	}
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Color)
}

func (m *ModelRenderer) Unload() {
	rl.UnloadModel(m.Model)
}
