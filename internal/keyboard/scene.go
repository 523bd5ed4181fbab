package keyboard

import (
	"log"

	"keyboard3d/internal/assets"
	"keyboard3d/internal/components"
	"keyboard3d/internal/engine"
	"keyboard3d/internal/orbit"
	"keyboard3d/internal/scripts"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	AmbientIntensity float32 = 0.5
	MountScale       float32 = 15
)

// MountRotation is (π/4, π/12, 0) in the transform's Euler degrees.
var MountRotation = rl.Vector3{X: 45, Y: 15, Z: 0}

// LightPosition puts the directional light straight above the model.
var LightPosition = rl.Vector3{X: 0, Y: 5, Z: 0}

type Options struct {
	CameraPosition rl.Vector3
	Fovy           float32
	DampingFPS     int // 0 disables damping
	DampingFreq    float64
}

func DefaultOptions() Options {
	return Options{
		CameraPosition: rl.Vector3{X: 0, Y: 0, Z: 5},
		Fovy:           75,
		DampingFPS:     0,
	}
}

// Handle owns a mounted keyboard scene. Hosts drive it with Update once per
// frame and release it with Unmount.
type Handle struct {
	Scene       *engine.Scene
	Ambient     *components.AmbientLight
	Directional *components.DirectionalLight
	Mount       *engine.GameObject
	Model       *engine.GameObject
	Renderer    *components.ModelRenderer
	Orbit       *components.OrbitControls
	Pendulum    *scripts.Pendulum

	err error
}

// Compose mounts the keyboard scene against the process-wide asset cache.
func Compose() *Handle {
	return ComposeWith(assets.Default(), DefaultOptions())
}

func ComposeWith(cache *assets.Cache, opts Options) *Handle {
	h := &Handle{Scene: engine.NewScene("Keyboard")}

	ambient := engine.NewGameObject("AmbientLight")
	ambient.Tags = []string{components.LightTag}
	h.Ambient = components.NewAmbientLight(AmbientIntensity)
	ambient.AddComponent(h.Ambient)

	directional := engine.NewGameObject("DirectionalLight")
	directional.Tags = []string{components.LightTag}
	directional.Transform.Position = LightPosition
	h.Directional = components.NewDirectionalLight()
	directional.AddComponent(h.Directional)

	h.Mount = engine.NewGameObject("KeyboardMount")
	h.Mount.Transform.Scale = rl.Vector3{X: MountScale, Y: MountScale, Z: MountScale}
	h.Mount.Transform.Rotation = MountRotation

	h.Model = NewModel(cache, GroupProps{
		OnError: func(err error) {
			h.err = err
			log.Printf("Keyboard model failed to load: %v", err)
		},
	})
	h.Mount.AddChild(h.Model)
	h.Renderer = engine.GetComponent[*components.ModelRenderer](h.Model)

	camera := engine.NewGameObject("OrbitCamera")
	h.Orbit = components.NewOrbitControls(components.OrbitSettings{
		Position:        opts.CameraPosition,
		Target:          rl.Vector3Zero(),
		Fovy:            opts.Fovy,
		EnableZoom:      false,
		EnablePan:       false,
		MinPolarAngle:   math32.Pi / 2,
		MaxPolarAngle:   0,
		AutoRotate:      true,
		AutoRotateSpeed: 1,
		DampingFPS:      opts.DampingFPS,
		DampingFreq:     opts.DampingFreq,
	})
	camera.AddComponent(h.Orbit)

	pendulum, ok := engine.CreateScript(scripts.PendulumScript, map[string]any{
		"threshold": float64(orbit.SwingThreshold),
		"orbit":     camera.UID,
	}).(*scripts.Pendulum)
	if !ok {
		pendulum = scripts.NewPendulum(camera)
	}
	h.Pendulum = pendulum
	camera.AddComponent(h.Pendulum)

	h.Scene.AddGameObject(ambient)
	h.Scene.AddGameObject(directional)
	h.Scene.AddGameObject(h.Mount)
	h.Scene.AddGameObject(h.Model)
	h.Scene.AddGameObject(camera)
	h.Scene.Start()

	return h
}

// Update runs one frame: model readiness, orbit advance, then the pendulum.
func (h *Handle) Update(deltaTime float32) {
	h.Scene.Update(deltaTime)
}

// Controls returns the live orbit controller, nil before it is attached or
// after Unmount.
func (h *Handle) Controls() *orbit.Controls {
	if h.Orbit == nil {
		return nil
	}
	return h.Orbit.Controls()
}

// Camera returns the orbit view; false when there is nothing to look through.
func (h *Handle) Camera() (rl.Camera3D, bool) {
	if h.Orbit == nil {
		return rl.Camera3D{}, false
	}
	return h.Orbit.Camera()
}

// Err is the load error reported by the model, if any.
func (h *Handle) Err() error {
	return h.err
}

func (h *Handle) Unmount() {
	h.Scene.Unmount()
}
