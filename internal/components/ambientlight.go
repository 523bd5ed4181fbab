package components

import (
	"keyboard3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LightTag marks GameObjects carrying a light. Renderers only look for
// lights on tagged objects.
const LightTag = "light"

// AmbientLight lights every surface equally from all directions.
type AmbientLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
}

func NewAmbientLight(intensity float32) *AmbientLight {
	return &AmbientLight{
		Color:     rl.White,
		Intensity: intensity,
	}
}

func (a *AmbientLight) GetColorFloat() []float32 {
	return colorFloat(a.Color, a.Intensity)
}

func colorFloat(c rl.Color, intensity float32) []float32 {
	return []float32{
		float32(c.R) / 255.0 * intensity,
		float32(c.G) / 255.0 * intensity,
		float32(c.B) / 255.0 * intensity,
		1.0,
	}
}
