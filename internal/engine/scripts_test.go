package engine

import "testing"

type MockScript struct {
	BaseComponent
	Threshold float32
}

func mockFactory(props map[string]any) Component {
	script := &MockScript{Threshold: 1}
	if v, ok := props["threshold"].(float64); ok {
		script.Threshold = float32(v)
	}
	return script
}

func mockSerializer(c Component) map[string]any {
	s, ok := c.(*MockScript)
	if !ok {
		return nil
	}
	return map[string]any{"threshold": s.Threshold}
}

func TestRegisterScriptDuplicate(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}

	RegisterScript("Duplicate", mockFactory, mockSerializer)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()

	RegisterScript("Duplicate", mockFactory, mockSerializer)
}

func TestCreateScript(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}
	RegisterScript("MockScript", mockFactory, mockSerializer)

	component := CreateScript("MockScript", map[string]any{"threshold": 0.25})
	script, ok := component.(*MockScript)
	if !ok {
		t.Fatal("CreateScript didn't return MockScript")
	}

	if script.Threshold != 0.25 {
		t.Errorf("Expected Threshold 0.25, got %f", script.Threshold)
	}

	if CreateScript("DoesNotExist", nil) != nil {
		t.Error("CreateScript should return nil for non-existent script")
	}
}

func TestSerializeScript(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}
	RegisterScript("MockScript", mockFactory, mockSerializer)

	name, props, ok := SerializeScript(&MockScript{Threshold: 2})
	if !ok {
		t.Fatal("SerializeScript failed")
	}

	if name != "MockScript" {
		t.Errorf("Expected name 'MockScript', got '%s'", name)
	}

	if props["threshold"] != float32(2) {
		t.Errorf("Expected threshold 2, got %v", props["threshold"])
	}

	if _, _, ok := SerializeScript(&BaseComponent{}); ok {
		t.Error("SerializeScript should fail for unregistered component")
	}
}

func TestGetRegisteredScriptsSorted(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}
	RegisterScript("Zeta", mockFactory, nil)
	RegisterScript("Alpha", mockFactory, nil)

	names := GetRegisteredScripts()
	if len(names) != 2 || names[0] != "Alpha" || names[1] != "Zeta" {
		t.Errorf("Expected [Alpha Zeta], got %v", names)
	}
}
