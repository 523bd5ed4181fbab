package components

import (
	"errors"
	"testing"

	"keyboard3d/internal/assets"
	"keyboard3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testBundle() *assets.Bundle {
	return assets.NewBundle("/test.glb", rl.Model{}, &assets.Manifest{
		Nodes:     map[string][]int{"Case": {0}, "Caps": {1, 2}},
		Materials: map[string]int{"Lime": 1, "Grape": 2},
		MeshCount: 3,
	})
}

func TestResolveParts(t *testing.T) {
	elements, err := ResolveParts(testBundle(), []Part{
		{Node: "Case", Material: "Lime"},
		{Node: "Caps", Material: "Grape"},
	})
	if err != nil {
		t.Fatalf("ResolveParts: %v", err)
	}

	if len(elements) != 2 {
		t.Fatalf("Expected 2 elements, got %d", len(elements))
	}

	if elements[1].Node != "Caps" || len(elements[1].Meshes) != 2 || elements[1].MaterialIndex != 2 {
		t.Errorf("Unexpected element %+v", elements[1])
	}
}

func TestResolvePartsMissing(t *testing.T) {
	_, err := ResolveParts(testBundle(), []Part{{Node: "Knob", Material: "Lime"}})
	if !errors.Is(err, assets.ErrMissingNode) {
		t.Errorf("Expected ErrMissingNode, got %v", err)
	}

	_, err = ResolveParts(testBundle(), []Part{{Node: "Case", Material: "Lemon"}})
	if !errors.Is(err, assets.ErrMissingMaterial) {
		t.Errorf("Expected ErrMissingMaterial, got %v", err)
	}
}

func TestModelRendererPendingDrawsNothing(t *testing.T) {
	m := NewModelRenderer(assets.NewCache(t.TempDir(), nil), "/missing.glb", nil)
	g := engine.NewGameObject("Model")
	g.AddComponent(m)

	// Never started: no request, nothing to poll, Draw must not touch raylib.
	m.Update(0.016)
	m.Draw()

	if m.State() != LoadPending || m.Elements() != nil {
		t.Errorf("Expected pending renderer, got %v", m.State())
	}
}

func TestLoadStateString(t *testing.T) {
	cases := map[LoadState]string{
		LoadPending:  "pending",
		LoadReady:    "ready",
		LoadFailed:   "failed",
		LoadState(9): "LoadState(9)",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	}
}

func TestDirectionalLightDirection(t *testing.T) {
	l := NewDirectionalLight()
	if d := l.Direction(); d.Y != -1 {
		t.Errorf("Detached light should point down, got %v", d)
	}

	g := engine.NewGameObject("Sun")
	g.Transform.Position = rl.Vector3{X: 3, Y: 4}
	g.AddComponent(l)

	d := l.Direction()
	if rl.Vector3Distance(d, rl.Vector3{X: -0.6, Y: -0.8}) > 1e-5 {
		t.Errorf("Expected (-0.6, -0.8, 0), got %v", d)
	}
}

func TestLightColorFloat(t *testing.T) {
	a := NewAmbientLight(0.5)
	c := a.GetColorFloat()
	if c[0] != 0.5 || c[1] != 0.5 || c[2] != 0.5 || c[3] != 1 {
		t.Errorf("Expected half-white, got %v", c)
	}
}
