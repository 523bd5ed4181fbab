package world

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"keyboard3d/internal/components"
	"keyboard3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSnapshot(t *testing.T) {
	scene := engine.NewScene("Keyboard")

	mount := engine.NewGameObject("KeyboardMount")
	mount.Transform.Scale = rl.Vector3{X: 15, Y: 15, Z: 15}
	model := engine.NewGameObject("KeyboardModel")
	mount.AddChild(model)

	camera := engine.NewGameObject("OrbitCamera")
	oc := components.NewOrbitControls(components.OrbitSettings{
		Position:        rl.Vector3{Z: 5},
		AutoRotate:      true,
		AutoRotateSpeed: 1,
	})
	camera.AddComponent(oc)

	light := engine.NewGameObject("AmbientLight")
	light.AddComponent(components.NewAmbientLight(0.5))

	scene.AddGameObject(light)
	scene.AddGameObject(mount)
	scene.AddGameObject(model)
	scene.AddGameObject(camera)
	scene.Start()

	sf := Snapshot(scene)

	if sf.Name != "Keyboard" || len(sf.Objects) != 4 {
		t.Fatalf("Expected 4 objects in Keyboard, got %s/%d", sf.Name, len(sf.Objects))
	}

	if sf.Objects[1].Scale != [3]float32{15, 15, 15} {
		t.Errorf("Expected mount scale 15, got %v", sf.Objects[1].Scale)
	}

	if sf.Objects[2].Parent != "KeyboardMount" {
		t.Errorf("Expected model parent KeyboardMount, got %q", sf.Objects[2].Parent)
	}

	var orbitDef orbitControlsDef
	if err := json.Unmarshal(sf.Objects[3].Components[0], &orbitDef); err != nil {
		t.Fatal(err)
	}
	if !orbitDef.Ready || orbitDef.AutoRotateSpeed != 1 || orbitDef.EnableZoom {
		t.Errorf("Unexpected orbit snapshot %+v", orbitDef)
	}
}

func TestSaveScene(t *testing.T) {
	scene := engine.NewScene("Keyboard")
	scene.AddGameObject(engine.NewGameObject("Empty"))

	path := filepath.Join(t.TempDir(), "scene.json")
	if err := SaveScene(scene, path); err != nil {
		t.Fatalf("SaveScene: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name": "Empty"`) {
		t.Errorf("Expected object in output, got %s", data)
	}

	if err := SaveScene(scene, filepath.Join(t.TempDir(), "missing", "scene.json")); err == nil {
		t.Error("Expected write error for a missing directory")
	}
}
