package world

import (
	"testing"

	"keyboard3d/internal/components"
	"keyboard3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCollectLighting(t *testing.T) {
	scene := engine.NewScene("Test")

	ambient := engine.NewGameObject("AmbientLight")
	ambient.Tags = []string{components.LightTag}
	ambient.AddComponent(components.NewAmbientLight(0.5))
	scene.AddGameObject(ambient)

	sun := engine.NewGameObject("DirectionalLight")
	sun.Tags = []string{components.LightTag}
	sun.Transform.Position = rl.Vector3{Y: 5}
	sun.AddComponent(components.NewDirectionalLight())
	scene.AddGameObject(sun)

	l := CollectLighting(scene)

	if l.LightDir != [3]float32{0, -1, 0} {
		t.Errorf("Expected light straight down, got %v", l.LightDir)
	}
	if l.Ambient[0] != 0.5 {
		t.Errorf("Expected ambient 0.5, got %v", l.Ambient)
	}
	if l.LightColor[0] != 1 {
		t.Errorf("Expected white directional light, got %v", l.LightColor)
	}
}

func TestCollectLightingSkipsInactive(t *testing.T) {
	scene := engine.NewScene("Test")

	ambient := engine.NewGameObject("AmbientLight")
	ambient.Tags = []string{components.LightTag}
	ambient.AddComponent(components.NewAmbientLight(0.5))
	ambient.Active = false
	scene.AddGameObject(ambient)

	l := CollectLighting(scene)
	if l.Ambient[0] != 0 {
		t.Errorf("Inactive light should not contribute, got %v", l.Ambient)
	}
}

func TestCollectLightingNeedsLightTag(t *testing.T) {
	scene := engine.NewScene("Test")

	untagged := engine.NewGameObject("AmbientLight")
	untagged.AddComponent(components.NewAmbientLight(0.5))
	scene.AddGameObject(untagged)

	if l := CollectLighting(scene); l.Ambient[0] != 0 {
		t.Errorf("Untagged light should not contribute, got %v", l.Ambient)
	}

	untagged.Tags = []string{components.LightTag}
	if l := CollectLighting(scene); l.Ambient[0] != 0.5 {
		t.Errorf("Expected tagged ambient 0.5, got %v", l.Ambient)
	}
}

func TestModelRendererIsShaded(t *testing.T) {
	scene := engine.NewScene("Test")
	g := engine.NewGameObject("Model")
	m := components.NewModelRenderer(nil, "/landing/keyboard.glb", nil)
	g.AddComponent(m)
	scene.AddGameObject(g)

	NewRenderer(rl.Blank).Bind(scene)

	if engine.FindComponent[shaded](g) == nil {
		t.Error("ModelRenderer should be found as a shaded component")
	}
}
