// Package orbit implements a spherical orbit camera around a fixed target,
// with optional continuous auto-rotation and a pendulum rule that swings the
// rotation back and forth across the front of the target.
package orbit

import (
	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// radiansPerSecondAtSpeedOne is a full orbit every 60 seconds at speed 1.
const radiansPerSecondAtSpeedOne = 2 * math32.Pi / 60

// polarEpsilon keeps phi off the poles where the up vector degenerates.
const polarEpsilon = 1e-6

// Controls is the orbit controller state. Zoom and pan are never applied when
// their flags are off, so Distance and Target are fixed after New.
type Controls struct {
	Target rl.Vector3
	Fovy   float32

	EnableZoom bool
	EnablePan  bool

	MinPolarAngle   float32
	MaxPolarAngle   float32
	MinAzimuthAngle float32
	MaxAzimuthAngle float32

	AutoRotate      bool
	AutoRotateSpeed float32

	radius float32
	theta  float32 // azimuth
	phi    float32 // polar

	damping     bool
	frequency   float64
	springStep  float64 // seconds the spring was built for
	spring      harmonica.Spring
	angVelocity float64
	angAccel    float64
}

// New places the camera at position looking at target. Limits default to
// "no limit": polar [0, π], azimuth (-Inf, +Inf).
func New(position, target rl.Vector3) *Controls {
	c := &Controls{
		Target:          target,
		Fovy:            75,
		EnableZoom:      true,
		EnablePan:       true,
		MinPolarAngle:   0,
		MaxPolarAngle:   math32.Pi,
		MinAzimuthAngle: math32.Inf(-1),
		MaxAzimuthAngle: math32.Inf(1),
		AutoRotateSpeed: 2,
	}
	offset := rl.Vector3Subtract(position, target)
	c.radius = math32.Sqrt(offset.X*offset.X + offset.Y*offset.Y + offset.Z*offset.Z)
	if c.radius == 0 {
		c.theta, c.phi = 0, 0
	} else {
		c.theta = math32.Atan2(offset.X, offset.Z)
		c.phi = math32.Acos(clamp(offset.Y/c.radius, -1, 1))
	}
	return c
}

// EnableDamping smooths the angular velocity with a critically damped spring.
// The spring starts out stepped at fps and is rebuilt whenever Update sees a
// different frame time, so the easing takes the same wall time at any frame
// rate. A factor of zero or less turns damping off.
func (c *Controls) EnableDamping(fps int, frequency float64) {
	if fps <= 0 || frequency <= 0 {
		c.damping = false
		return
	}
	c.damping = true
	c.frequency = frequency
	c.setSpringStep(harmonica.FPS(fps))
}

func (c *Controls) setSpringStep(step float64) {
	c.springStep = step
	c.spring = harmonica.NewSpring(step, c.frequency, 1.0)
}

func (c *Controls) Damping() bool {
	return c.damping
}

// AzimuthalAngle is the horizontal angle around the target in (-π, π].
func (c *Controls) AzimuthalAngle() float32 {
	return c.theta
}

func (c *Controls) PolarAngle() float32 {
	return c.phi
}

func (c *Controls) Distance() float32 {
	return c.radius
}

// AngularVelocity is the azimuth rate applied on the last Update, in rad/s.
// Positive values decrease the azimuth.
func (c *Controls) AngularVelocity() float32 {
	return float32(c.angVelocity)
}

// Update advances auto-rotation by deltaTime seconds and re-applies limits.
func (c *Controls) Update(deltaTime float32) {
	var target float64
	if c.AutoRotate {
		target = float64(radiansPerSecondAtSpeedOne * c.AutoRotateSpeed)
	}

	if c.damping {
		if step := float64(deltaTime); step > 0 && step != c.springStep {
			c.setSpringStep(step)
		}
		c.angVelocity, c.angAccel = c.spring.Update(c.angVelocity, c.angAccel, target)
	} else {
		c.angVelocity = target
		c.angAccel = 0
	}

	c.theta -= float32(c.angVelocity) * deltaTime
	c.applyLimits()
}

// SetAzimuthalAngle moves the camera to a given azimuth, subject to limits.
func (c *Controls) SetAzimuthalAngle(theta float32) {
	c.theta = theta
	c.applyLimits()
}

func (c *Controls) applyLimits() {
	c.theta = wrapAngle(c.theta)
	if !math32.IsInf(c.MinAzimuthAngle, 0) && !math32.IsInf(c.MaxAzimuthAngle, 0) {
		c.theta = math32.Max(c.MinAzimuthAngle, math32.Min(c.MaxAzimuthAngle, c.theta))
	}

	// Order matters when Min > Max: the lower bound wins.
	c.phi = math32.Max(c.MinPolarAngle, math32.Min(c.MaxPolarAngle, c.phi))
	c.phi = clamp(c.phi, polarEpsilon, math32.Pi-polarEpsilon)
}

// Position is the camera eye in world space.
func (c *Controls) Position() rl.Vector3 {
	sinPhi := math32.Sin(c.phi)
	return rl.Vector3{
		X: c.Target.X + c.radius*sinPhi*math32.Sin(c.theta),
		Y: c.Target.Y + c.radius*math32.Cos(c.phi),
		Z: c.Target.Z + c.radius*sinPhi*math32.Cos(c.theta),
	}
}

func (c *Controls) Camera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// wrapAngle maps a into (-π, π]. Non-finite input maps to 0.
func wrapAngle(a float32) float32 {
	if math32.IsInf(a, 0) || math32.IsNaN(a) {
		return 0
	}
	a = math32.Remainder(a, 2*math32.Pi)
	if a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
