// Package keyboard composes the landing-page keyboard: a seven-part model
// from a glTF bundle, two lights, and a pendulum-swinging orbit camera.
package keyboard

import (
	"context"

	"keyboard3d/internal/assets"
	"keyboard3d/internal/components"
	"keyboard3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AssetPath is the request path of the keyboard bundle.
const AssetPath = "/landing/keyboard.glb"

// Parts is every mesh the model draws, one per keycap colorway plus the case.
var Parts = []components.Part{
	{Node: "Object_4", Material: "NovelKeys"},
	{Node: "Object_5", Material: "Lime"},
	{Node: "Object_6", Material: "Grape"},
	{Node: "Object_7", Material: "Blueberry"},
	{Node: "Object_8", Material: "Lemon"},
	{Node: "Object_9", Material: "Strawberry"},
	{Node: "Object_10", Material: "Material"},
}

// GroupProps are passed straight through to the model's GameObject.
type GroupProps struct {
	Name      string
	Tags      []string
	Transform *engine.Transform
	OnReady   func()
	OnError   func(error)
}

// Preload starts decoding the bundle ahead of the first mount.
func Preload(cache *assets.Cache) {
	cache.Preload(AssetPath)
}

// NewModel returns a GameObject that draws the keyboard once the bundle
// resolves. It does not move or rotate the meshes; callers position the group.
func NewModel(cache *assets.Cache, props GroupProps) *engine.GameObject {
	name := props.Name
	if name == "" {
		name = "KeyboardModel"
	}

	g := engine.NewGameObject(name)
	g.Tags = props.Tags
	if props.Transform != nil {
		g.Transform = *props.Transform
	}

	parts := make([]components.Part, len(Parts))
	copy(parts, Parts)
	renderer := components.NewModelRenderer(cache, AssetPath, parts)
	if props.OnReady != nil {
		renderer.OnReady.AddListener(props.OnReady)
	}
	if props.OnError != nil {
		renderer.OnError.AddListener(props.OnError)
	}
	g.AddComponent(renderer)

	return g
}

// NodeNames lists the geometry nodes the bundle must contain.
func NodeNames() []string {
	names := make([]string, len(Parts))
	for i, p := range Parts {
		names[i] = p.Node
	}
	return names
}

// MaterialNames lists the materials the bundle must contain.
func MaterialNames() []string {
	names := make([]string, len(Parts))
	for i, p := range Parts {
		names[i] = p.Material
	}
	return names
}

// Check decodes the bundle without touching the GPU and verifies it exposes
// every node and material the model draws.
func Check(ctx context.Context, cache *assets.Cache) error {
	entry := cache.Request(AssetPath)
	if err := entry.Wait(ctx); err != nil {
		return err
	}
	probe := assets.NewBundle(AssetPath, rl.Model{}, entry.Manifest())
	return probe.Require(NodeNames(), MaterialNames())
}
