package assets

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelUploader turns a file on disk into GPU resources. It is only ever
// called from the thread that owns the GL context.
type ModelUploader interface {
	Upload(path string) (rl.Model, error)
	Unload(model rl.Model)
}

type raylibUploader struct{}

// RaylibUploader loads models with rl.LoadModel. It needs an open window.
func RaylibUploader() ModelUploader {
	return raylibUploader{}
}

func (raylibUploader) Upload(path string) (rl.Model, error) {
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return model, fmt.Errorf("%s: %w", path, ErrEmptyModel)
	}
	return model, nil
}

func (raylibUploader) Unload(model rl.Model) {
	rl.UnloadModel(model)
}

// Meshes views the model's C mesh array as a slice.
func Meshes(model rl.Model) []rl.Mesh {
	if model.Meshes == nil || model.MeshCount <= 0 {
		return nil
	}
	return unsafe.Slice(model.Meshes, model.MeshCount)
}

// Materials views the model's C material array as a slice.
func Materials(model rl.Model) []rl.Material {
	if model.Materials == nil || model.MaterialCount <= 0 {
		return nil
	}
	return unsafe.Slice(model.Materials, model.MaterialCount)
}
