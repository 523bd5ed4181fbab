package assets

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/qmuntal/gltf"
)

var (
	ErrMissingNode     = errors.New("missing node")
	ErrMissingMaterial = errors.New("missing material")
	ErrEmptyModel      = errors.New("model has no meshes")
	ErrMeshMismatch    = errors.New("uploaded mesh count does not match manifest")
)

// Manifest maps glTF names onto the mesh and material slots raylib produces
// when it loads the same file. raylib walks nodes in order, emits one mesh per
// triangle primitive, and shifts glTF materials up by one to make room for its
// default material at slot 0.
type Manifest struct {
	Nodes         map[string][]int
	Materials     map[string]int
	MeshMaterials []int
	MeshCount     int
}

// DecodeManifest reads a .gltf or .glb file and indexes its node and material names.
func DecodeManifest(path string) (*Manifest, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return NewManifest(doc), nil
}

func NewManifest(doc *gltf.Document) *Manifest {
	m := &Manifest{
		Nodes:     make(map[string][]int),
		Materials: make(map[string]int),
	}

	for i, mat := range doc.Materials {
		if mat == nil || mat.Name == "" {
			continue
		}
		if _, dup := m.Materials[mat.Name]; !dup {
			m.Materials[mat.Name] = i + 1
		}
	}

	for _, node := range doc.Nodes {
		if node == nil || node.Mesh == nil || *node.Mesh < 0 || *node.Mesh >= len(doc.Meshes) {
			continue
		}
		mesh := doc.Meshes[*node.Mesh]
		for _, prim := range mesh.Primitives {
			if prim == nil || prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			material := 0
			if prim.Material != nil {
				material = *prim.Material + 1
			}
			if node.Name != "" {
				m.Nodes[node.Name] = append(m.Nodes[node.Name], m.MeshCount)
			}
			m.MeshMaterials = append(m.MeshMaterials, material)
			m.MeshCount++
		}
	}

	return m
}

// Bundle is a decoded, uploaded asset: read-only once built.
type Bundle struct {
	Path     string
	Model    rl.Model
	manifest *Manifest
}

func NewBundle(path string, model rl.Model, manifest *Manifest) *Bundle {
	return &Bundle{Path: path, Model: model, manifest: manifest}
}

// Node returns the raylib mesh indices of a named node.
func (b *Bundle) Node(name string) ([]int, error) {
	meshes, ok := b.manifest.Nodes[name]
	if !ok || len(meshes) == 0 {
		return nil, fmt.Errorf("%s: %w %q", b.Path, ErrMissingNode, name)
	}
	return meshes, nil
}

// Material returns the raylib material slot of a named material.
func (b *Bundle) Material(name string) (int, error) {
	slot, ok := b.manifest.Materials[name]
	if !ok {
		return 0, fmt.Errorf("%s: %w %q", b.Path, ErrMissingMaterial, name)
	}
	return slot, nil
}

// Require checks that every named node and material is present.
func (b *Bundle) Require(nodes, materials []string) error {
	var errs []error
	for _, name := range nodes {
		if _, err := b.Node(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range materials {
		if _, err := b.Material(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *Bundle) MeshCount() int {
	return b.manifest.MeshCount
}
