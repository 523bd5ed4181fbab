package scripts

import (
	"keyboard3d/internal/components"
	"keyboard3d/internal/engine"
	"keyboard3d/internal/orbit"
)

const PendulumScript = "Pendulum"

// Pendulum swings an orbit camera back and forth: once the camera has turned
// Threshold radians to one side, auto-rotation is reversed. The orbit target is
// held by reference; frames where it has not been spawned or started yet are
// skipped.
type Pendulum struct {
	engine.BaseComponent
	Orbit     engine.GameObjectRef
	Threshold float32
}

func NewPendulum(target *engine.GameObject) *Pendulum {
	p := &Pendulum{Threshold: orbit.SwingThreshold}
	p.Orbit.Set(target)
	return p
}

// Controls resolves the orbit reference. Nil until the controller is attached.
func (p *Pendulum) Controls() *components.OrbitControls {
	g := p.GetGameObject()
	if g == nil {
		return nil
	}
	target := p.Orbit.Get(g.Scene)
	if target == nil {
		return nil
	}
	oc := engine.GetComponent[*components.OrbitControls](target)
	if oc == nil || !oc.Ready() {
		return nil
	}
	return oc
}

func (p *Pendulum) Update(deltaTime float32) {
	oc := p.Controls()
	if oc == nil {
		return
	}
	c := oc.Controls()
	oc.SetAutoRotateSpeed(orbit.Swing(c.AzimuthalAngle(), c.AutoRotateSpeed, p.Threshold))
}

func init() {
	engine.RegisterScript(PendulumScript, pendulumFactory, pendulumSerializer)
}

func pendulumFactory(props map[string]any) engine.Component {
	p := &Pendulum{Threshold: orbit.SwingThreshold}
	if v, ok := props["threshold"].(float64); ok && v > 0 {
		p.Threshold = float32(v)
	}
	switch v := props["orbit"].(type) {
	case float64:
		p.Orbit.UID = uint64(v)
	case uint64:
		p.Orbit.UID = v
	}
	return p
}

func pendulumSerializer(c engine.Component) map[string]any {
	p, ok := c.(*Pendulum)
	if !ok {
		return nil
	}
	return map[string]any{
		"threshold": p.Threshold,
		"orbit":     p.Orbit.UID,
	}
}
