package world

import (
	"encoding/json"
	"fmt"
	"os"

	"keyboard3d/internal/components"
	"keyboard3d/internal/engine"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Parent     string            `json:"parent,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type modelRendererDef struct {
	Type  string            `json:"type"`
	Model string            `json:"model"`
	State string            `json:"state"`
	Parts []components.Part `json:"parts"`
	Error string            `json:"error,omitempty"`
}

type lightDef struct {
	Type      string      `json:"type"`
	Intensity float32     `json:"intensity"`
	Direction *[3]float32 `json:"direction,omitempty"`
}

type orbitControlsDef struct {
	Type            string  `json:"type"`
	Ready           bool    `json:"ready"`
	EnableZoom      bool    `json:"enableZoom"`
	EnablePan       bool    `json:"enablePan"`
	MinPolarAngle   float32 `json:"minPolarAngle"`
	MaxPolarAngle   float32 `json:"maxPolarAngle"`
	AutoRotate      bool    `json:"autoRotate"`
	AutoRotateSpeed float32 `json:"autoRotateSpeed"`
	Azimuth         float32 `json:"azimuth,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Snapshot ---

// Snapshot captures the scene's objects and component state. It is a
// debugging aid: nothing reads it back.
func Snapshot(scene *engine.Scene) SceneFile {
	sf := SceneFile{Name: scene.Name}

	for _, g := range scene.GameObjects {
		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
			Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
			Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
		}
		if g.Parent != nil {
			objDef.Parent = g.Parent.Name
		}

		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	return sf
}

// SaveScene writes a snapshot of scene to path as indented JSON.
func SaveScene(scene *engine.Scene, path string) error {
	data, err := json.MarshalIndent(Snapshot(scene), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.ModelRenderer:
		d := modelRendererDef{
			Type:  "ModelRenderer",
			Model: comp.Path,
			State: comp.State().String(),
			Parts: comp.Parts,
		}
		if err := comp.Err(); err != nil {
			d.Error = err.Error()
		}
		def = d

	case *components.AmbientLight:
		def = lightDef{Type: "AmbientLight", Intensity: comp.Intensity}

	case *components.DirectionalLight:
		dir := comp.Direction()
		def = lightDef{
			Type:      "DirectionalLight",
			Intensity: comp.Intensity,
			Direction: &[3]float32{dir.X, dir.Y, dir.Z},
		}

	case *components.OrbitControls:
		s := comp.Settings
		d := orbitControlsDef{
			Type:            "OrbitControls",
			Ready:           comp.Ready(),
			EnableZoom:      s.EnableZoom,
			EnablePan:       s.EnablePan,
			MinPolarAngle:   s.MinPolarAngle,
			MaxPolarAngle:   s.MaxPolarAngle,
			AutoRotate:      s.AutoRotate,
			AutoRotateSpeed: s.AutoRotateSpeed,
		}
		if c := comp.Controls(); c != nil {
			d.AutoRotateSpeed = c.AutoRotateSpeed
			d.Azimuth = c.AzimuthalAngle()
		}
		def = d

	default:
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
