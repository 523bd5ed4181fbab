package components

import (
	"fmt"

	"keyboard3d/internal/assets"
	"keyboard3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Part pairs one named geometry node with one named material.
type Part struct {
	Node     string `json:"node"`
	Material string `json:"material"`
}

// MeshElement is a resolved Part: the raylib mesh slots of the node and the
// material slot to draw them with.
type MeshElement struct {
	Part
	Meshes        []int
	MaterialIndex int
}

// LoadState tracks a ModelRenderer through its asset request.
type LoadState int

const (
	LoadPending LoadState = iota
	LoadReady
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadPending:
		return "pending"
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	}
	return fmt.Sprintf("LoadState(%d)", int(s))
}

// ResolveParts looks every part up in the bundle. Any missing node or
// material fails the whole set.
func ResolveParts(bundle *assets.Bundle, parts []Part) ([]MeshElement, error) {
	elements := make([]MeshElement, 0, len(parts))
	for _, p := range parts {
		meshes, err := bundle.Node(p.Node)
		if err != nil {
			return nil, err
		}
		slot, err := bundle.Material(p.Material)
		if err != nil {
			return nil, err
		}
		elements = append(elements, MeshElement{Part: p, Meshes: meshes, MaterialIndex: slot})
	}
	return elements, nil
}

// ModelRenderer draws a fixed set of parts from a cached asset bundle. It
// draws nothing until the bundle has resolved, and nothing at all once the
// bundle has failed.
type ModelRenderer struct {
	engine.BaseComponent
	Path  string
	Parts []Part

	OnReady engine.Event
	OnError engine.EventWithArg[error]

	cache    *assets.Cache
	entry    *assets.Entry
	bundle   *assets.Bundle
	elements []MeshElement
	state    LoadState
	err      error

	shader    rl.Shader
	hasShader bool
}

func NewModelRenderer(cache *assets.Cache, path string, parts []Part) *ModelRenderer {
	return &ModelRenderer{
		Path:  path,
		Parts: parts,
		cache: cache,
	}
}

// Start requests the bundle. The request is memoized by the cache, so
// remounting reuses the same decode.
func (m *ModelRenderer) Start() {
	if m.entry == nil && m.state == LoadPending {
		m.entry = m.cache.Request(m.Path)
	}
}

func (m *ModelRenderer) Update(deltaTime float32) {
	if m.entry == nil || m.state != LoadPending {
		return
	}

	bundle, ready, err := m.cache.Poll(m.entry)
	if !ready {
		return
	}
	if err != nil {
		m.fail(err)
		return
	}

	elements, err := ResolveParts(bundle, m.Parts)
	if err != nil {
		m.fail(err)
		return
	}

	m.bundle = bundle
	m.elements = elements
	m.state = LoadReady
	if m.hasShader {
		m.applyShader()
	}
	m.OnReady.Invoke()
}

func (m *ModelRenderer) fail(err error) {
	m.state = LoadFailed
	m.err = err
	m.entry = nil
	m.OnError.Invoke(err)
}

func (m *ModelRenderer) State() LoadState {
	return m.state
}

func (m *ModelRenderer) Err() error {
	return m.err
}

// Elements returns the resolved parts, nil until the bundle is ready.
func (m *ModelRenderer) Elements() []MeshElement {
	return m.elements
}

// SetShader applies a lighting shader to every material the parts use.
func (m *ModelRenderer) SetShader(shader rl.Shader) {
	m.shader = shader
	m.hasShader = true
	if m.state == LoadReady {
		m.applyShader()
	}
}

func (m *ModelRenderer) applyShader() {
	materials := assets.Materials(m.bundle.Model)
	for _, el := range m.elements {
		if el.MaterialIndex < len(materials) {
			materials[el.MaterialIndex].Shader = m.shader
		}
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || m.state != LoadReady || !g.ActiveInHierarchy() {
		return
	}

	meshes := assets.Meshes(m.bundle.Model)
	materials := assets.Materials(m.bundle.Model)
	transform := g.WorldMatrix()

	for _, el := range m.elements {
		if el.MaterialIndex >= len(materials) {
			continue
		}
		for _, i := range el.Meshes {
			if i < len(meshes) {
				rl.DrawMesh(meshes[i], materials[el.MaterialIndex], transform)
			}
		}
	}
}

// OnDestroy drops the pending request. An in-flight decode still finishes
// into the cache; nobody polls it from here again.
func (m *ModelRenderer) OnDestroy() {
	m.entry = nil
	m.OnReady.RemoveAllListeners()
	m.OnError.RemoveAllListeners()
}
