package orbit

// SwingThreshold is the azimuth, in radians, past which auto-rotation reverses.
const SwingThreshold float32 = 0.5

// Swing returns the auto-rotate speed for the next frame. At or beyond
// +threshold it is +1, at or beyond -threshold it is -1, and inside the band
// the current direction is kept. The result always has magnitude 1.
func Swing(azimuth, speed, threshold float32) float32 {
	switch {
	case azimuth >= threshold:
		return 1
	case azimuth <= -threshold:
		return -1
	case speed < 0:
		return -1
	default:
		return 1
	}
}
