package components

import (
	"keyboard3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DirectionalLight shines from its GameObject's position toward Target.
type DirectionalLight struct {
	engine.BaseComponent
	Target    rl.Vector3
	Color     rl.Color
	Intensity float32
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Target:    rl.Vector3Zero(),
		Color:     rl.White,
		Intensity: 1.0,
	}
}

// Direction is the normalized vector the light travels along.
// A light sitting on its target points straight down.
func (l *DirectionalLight) Direction() rl.Vector3 {
	g := l.GetGameObject()
	if g == nil {
		return rl.Vector3{X: 0, Y: -1, Z: 0}
	}
	dir := rl.Vector3Subtract(l.Target, g.Transform.Position)
	if rl.Vector3Length(dir) == 0 {
		return rl.Vector3{X: 0, Y: -1, Z: 0}
	}
	return rl.Vector3Normalize(dir)
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return colorFloat(l.Color, l.Intensity)
}
