package engine

import "testing"

func TestGameObjectRefEmpty(t *testing.T) {
	var ref GameObjectRef

	if ref.IsValid() {
		t.Error("Empty reference should not be valid")
	}

	if ref.Get(NewScene("Test")) != nil {
		t.Error("Empty reference should resolve to nil")
	}
}

func TestGameObjectRefResolve(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Orbit")
	scene.AddGameObject(obj)

	var ref GameObjectRef
	ref.Set(obj)

	if !ref.IsValid() {
		t.Error("Reference should be valid after Set")
	}

	if got := ref.Get(scene); got != obj {
		t.Errorf("Expected %v, got %v", obj, got)
	}

	if ref.Get(nil) != nil {
		t.Error("Reference resolved against nil scene should be nil")
	}
}

func TestGameObjectRefAfterRemoval(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Orbit")
	scene.AddGameObject(obj)

	var ref GameObjectRef
	ref.Set(obj)
	scene.RemoveGameObject(obj)

	if ref.Get(scene) != nil {
		t.Error("Reference to removed object should resolve to nil")
	}

	ref.Set(nil)
	if ref.IsValid() {
		t.Error("Set(nil) should clear the reference")
	}

	ref.Set(obj)
	ref.Clear()
	if ref.UID != 0 {
		t.Error("Clear should reset UID")
	}
}
