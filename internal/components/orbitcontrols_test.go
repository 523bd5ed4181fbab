package components

import (
	"testing"

	"keyboard3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOrbitControlsNotReadyBeforeStart(t *testing.T) {
	oc := NewOrbitControls(OrbitSettings{Position: rl.Vector3{Z: 5}})

	if oc.Ready() || oc.Controls() != nil {
		t.Error("Controller should not exist before Start")
	}

	oc.Update(0.016)
	oc.SetAutoRotateSpeed(-1)

	if _, ok := oc.Camera(); ok {
		t.Error("Camera should not be available before Start")
	}
}

func TestOrbitControlsAppliesSettings(t *testing.T) {
	oc := NewOrbitControls(OrbitSettings{
		Position:        rl.Vector3{Z: 5},
		Fovy:            50,
		MinPolarAngle:   1,
		MaxPolarAngle:   2,
		AutoRotate:      true,
		AutoRotateSpeed: 1,
		DampingFPS:      60,
		DampingFreq:     6,
	})
	g := engine.NewGameObject("OrbitCamera")
	g.AddComponent(oc)
	g.Start()

	c := oc.Controls()
	if c == nil {
		t.Fatal("Expected controller after Start")
	}
	if c.Fovy != 50 || c.EnableZoom || c.EnablePan || !c.AutoRotate || c.AutoRotateSpeed != 1 {
		t.Errorf("Settings not applied: %+v", c)
	}
	if !c.Damping() {
		t.Error("Expected damping enabled")
	}

	cam, ok := oc.Camera()
	if !ok || cam.Fovy != 50 {
		t.Errorf("Expected camera with fovy 50, got %+v", cam)
	}
}

func TestOrbitControlsDirectionChanged(t *testing.T) {
	oc := NewOrbitControls(OrbitSettings{Position: rl.Vector3{Z: 5}, AutoRotateSpeed: 1})
	oc.Start()

	var got []float32
	oc.DirectionChanged.AddListener(func(s float32) { got = append(got, s) })

	oc.SetAutoRotateSpeed(1)
	oc.SetAutoRotateSpeed(-1)
	oc.SetAutoRotateSpeed(-1)
	oc.SetAutoRotateSpeed(1)

	if len(got) != 2 || got[0] != -1 || got[1] != 1 {
		t.Errorf("Expected [-1 1], got %v", got)
	}

	oc.OnDestroy()
	if oc.Ready() || oc.DirectionChanged.ListenerCount() != 0 {
		t.Error("OnDestroy should release the controller and listeners")
	}
}
