package components

import (
	"keyboard3d/internal/engine"
	"keyboard3d/internal/orbit"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitSettings configures the controller created when OrbitControls starts.
type OrbitSettings struct {
	Position        rl.Vector3
	Target          rl.Vector3
	Fovy            float32
	EnableZoom      bool
	EnablePan       bool
	MinPolarAngle   float32
	MaxPolarAngle   float32
	AutoRotate      bool
	AutoRotateSpeed float32
	DampingFPS      int     // 0 disables damping
	DampingFreq     float64 // spring angular frequency
}

// OrbitControls owns an orbit.Controls. The controller does not exist until
// Start, so callers must check Ready before touching it.
type OrbitControls struct {
	engine.BaseComponent
	Settings OrbitSettings

	// DirectionChanged fires with the new auto-rotate speed whenever its sign flips.
	DirectionChanged engine.EventWithArg[float32]

	controls *orbit.Controls
}

func NewOrbitControls(settings OrbitSettings) *OrbitControls {
	return &OrbitControls{Settings: settings}
}

func (o *OrbitControls) Start() {
	if o.controls != nil {
		return
	}
	s := o.Settings
	c := orbit.New(s.Position, s.Target)
	if s.Fovy > 0 {
		c.Fovy = s.Fovy
	}
	c.EnableZoom = s.EnableZoom
	c.EnablePan = s.EnablePan
	c.MinPolarAngle = s.MinPolarAngle
	c.MaxPolarAngle = s.MaxPolarAngle
	c.AutoRotate = s.AutoRotate
	c.AutoRotateSpeed = s.AutoRotateSpeed
	c.EnableDamping(s.DampingFPS, s.DampingFreq)
	o.controls = c
}

func (o *OrbitControls) Ready() bool {
	return o.controls != nil
}

// Controls returns the live controller, or nil before Start and after destroy.
func (o *OrbitControls) Controls() *orbit.Controls {
	return o.controls
}

// SetAutoRotateSpeed writes the speed and fires DirectionChanged on a sign flip.
func (o *OrbitControls) SetAutoRotateSpeed(speed float32) {
	if o.controls == nil {
		return
	}
	prev := o.controls.AutoRotateSpeed
	o.controls.AutoRotateSpeed = speed
	if (prev < 0) != (speed < 0) {
		o.DirectionChanged.Invoke(speed)
	}
}

func (o *OrbitControls) Update(deltaTime float32) {
	if o.controls == nil {
		return
	}
	o.controls.Update(deltaTime)
}

// Camera returns the current view, or false when the controller is not ready.
func (o *OrbitControls) Camera() (rl.Camera3D, bool) {
	if o.controls == nil {
		return rl.Camera3D{}, false
	}
	return o.controls.Camera(), true
}

func (o *OrbitControls) OnDestroy() {
	o.controls = nil
	o.DirectionChanged.RemoveAllListeners()
}
