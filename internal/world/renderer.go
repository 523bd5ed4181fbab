package world

import (
	"path/filepath"

	"keyboard3d/internal/components"
	"keyboard3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Lighting is the uniform set the lighting shader consumes.
type Lighting struct {
	LightDir   [3]float32
	LightColor []float32
	Ambient    []float32
}

// CollectLighting reads the first directional and ambient light among the
// scene's light-tagged objects. Missing lights contribute nothing.
func CollectLighting(scene *engine.Scene) Lighting {
	l := Lighting{
		LightDir:   [3]float32{0, -1, 0},
		LightColor: []float32{0, 0, 0, 1},
		Ambient:    []float32{0, 0, 0, 1},
	}
	var haveDir, haveAmbient bool
	for _, g := range scene.FindByTag(components.LightTag) {
		if !g.ActiveInHierarchy() {
			continue
		}
		if d := engine.GetComponent[*components.DirectionalLight](g); d != nil && !haveDir {
			dir := d.Direction()
			l.LightDir = [3]float32{dir.X, dir.Y, dir.Z}
			l.LightColor = d.GetColorFloat()
			haveDir = true
		}
		if a := engine.GetComponent[*components.AmbientLight](g); a != nil && !haveAmbient {
			l.Ambient = a.GetColorFloat()
			haveAmbient = true
		}
	}
	return l
}

type Renderer struct {
	Shader     rl.Shader
	Background rl.Color
	loaded     bool
}

func NewRenderer(background rl.Color) *Renderer {
	return &Renderer{Background: background}
}

// Initialize loads the lighting shader. It needs an open window.
func (r *Renderer) Initialize(shaderDir string) {
	r.Shader = rl.LoadShader(
		filepath.Join(shaderDir, "lighting.vs"),
		filepath.Join(shaderDir, "lighting.fs"),
	)
	r.loaded = true
}

// shaded is any component that draws through a swappable shader.
type shaded interface {
	SetShader(rl.Shader)
}

// Bind hands the lighting shader to every shaded component in the scene.
func (r *Renderer) Bind(scene *engine.Scene) {
	if !r.loaded {
		return
	}
	for _, g := range scene.GameObjects {
		if s := engine.FindComponent[shaded](g); s != nil {
			s.SetShader(r.Shader)
		}
	}
}

func (r *Renderer) updateShaderUniforms(l Lighting, camera rl.Camera3D) {
	lightDirLoc := rl.GetShaderLocation(r.Shader, "lightDir")
	rl.SetShaderValue(r.Shader, lightDirLoc, l.LightDir[:], rl.ShaderUniformVec3)

	lightColorLoc := rl.GetShaderLocation(r.Shader, "lightColor")
	rl.SetShaderValue(r.Shader, lightColorLoc, l.LightColor, rl.ShaderUniformVec4)

	ambientLoc := rl.GetShaderLocation(r.Shader, "ambient")
	rl.SetShaderValue(r.Shader, ambientLoc, l.Ambient, rl.ShaderUniformVec4)

	viewPosLoc := rl.GetShaderLocation(r.Shader, "viewPos")
	rl.SetShaderValue(r.Shader, viewPosLoc, []float32{camera.Position.X, camera.Position.Y, camera.Position.Z}, rl.ShaderUniformVec3)
}

// Draw clears the frame and draws every active Drawable through camera.
// Call between rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Draw(scene *engine.Scene, camera rl.Camera3D) {
	rl.ClearBackground(r.Background)

	if r.loaded {
		r.updateShaderUniforms(CollectLighting(scene), camera)
	}

	rl.BeginMode3D(camera)
	for _, g := range scene.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}
	rl.EndMode3D()
}

func (r *Renderer) Unload() {
	if !r.loaded {
		return
	}
	rl.UnloadShader(r.Shader)
	r.loaded = false
}
