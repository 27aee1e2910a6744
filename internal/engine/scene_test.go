package engine

import "testing"

type drawCounter struct {
	BaseComponent
	draws int
}

func (d *drawCounter) Draw() { d.draws++ }

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Globe")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Pivot")
	child := NewGameObject("Rig")
	other := NewGameObject("Sky")

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	scene.AddGameObject(other)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != other {
		t.Errorf("Expected only Sky to remain, got %d objects", len(scene.GameObjects))
	}
	if parent.Scene != nil || child.Scene != nil {
		t.Error("Removed objects should have nil Scene")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Pivot")
	scene.AddGameObject(obj)

	if scene.FindByName("Pivot") != obj {
		t.Error("FindByName failed")
	}

	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	globe := NewGameObject("Globe")
	sky := NewGameObject("Sky")
	globe.Tags = []string{"body"}
	sky.Tags = []string{"body", "backdrop"}
	scene.AddGameObject(globe)
	scene.AddGameObject(sky)

	if got := len(scene.FindByTag("body")); got != 2 {
		t.Errorf("Expected 2 bodies, got %d", got)
	}

	if got := len(scene.FindByTag("nonexistent")); got != 0 {
		t.Errorf("Expected 0 matches, got %d", got)
	}
}

func TestSceneUpdateOrder(t *testing.T) {
	scene := NewScene("Test")
	var order []string

	for _, name := range []string{"Pivot", "Camera"} {
		obj := NewGameObject(name)
		n := name
		obj.AddComponent(&funcComponent{update: func() { order = append(order, n) }})
		scene.AddGameObject(obj)
	}

	scene.Start()
	scene.Update(0.016)

	if len(order) != 2 || order[0] != "Pivot" || order[1] != "Camera" {
		t.Errorf("Expected insertion order, got %v", order)
	}
}

func TestSceneDrawablesSkipsInactive(t *testing.T) {
	scene := NewScene("Test")
	visible := NewGameObject("Globe")
	hidden := NewGameObject("Hidden")
	visible.AddComponent(&drawCounter{})
	hidden.AddComponent(&drawCounter{})
	hidden.Active = false
	scene.AddGameObject(visible)
	scene.AddGameObject(hidden)

	drawables := scene.Drawables()
	if len(drawables) != 1 {
		t.Fatalf("Expected 1 drawable, got %d", len(drawables))
	}
	drawables[0].Draw()
	if GetComponent[*drawCounter](visible).draws != 1 {
		t.Error("Expected the active object's drawable")
	}
}

type funcComponent struct {
	BaseComponent
	update func()
}

func (f *funcComponent) Update(_ float32) { f.update() }
