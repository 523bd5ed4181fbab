package viewer

import (
	"fmt"

	"keyboard3d/internal/components"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayX          = 10
	overlayY          = 10
	overlayWidth      = 280
	overlayLineHeight = 20
)

// OverlayStats is everything the debug panel shows.
type OverlayStats struct {
	Asset    components.LoadState
	Err      error
	Ready    bool
	Azimuth  float32
	Speed    float32
	Velocity float32
	Flips    int
	UpdateMs float64
	DrawMs   float64
}

func (v *Viewer) stats() OverlayStats {
	s := OverlayStats{
		Asset:    v.Keyboard.Renderer.State(),
		Err:      v.boundaryErr,
		Flips:    v.flips,
		UpdateMs: v.updateMs,
		DrawMs:   v.drawMs,
	}
	if c := v.Keyboard.Controls(); c != nil {
		s.Ready = true
		s.Azimuth = c.AzimuthalAngle()
		s.Speed = c.AutoRotateSpeed
		s.Velocity = c.AngularVelocity()
	}
	return s
}

// OverlayLines formats the panel text, one entry per row.
func OverlayLines(s OverlayStats) []string {
	lines := []string{fmt.Sprintf("Asset:    %s", s.Asset)}
	if s.Err != nil {
		lines = append(lines, fmt.Sprintf("Error:    %v", s.Err))
	}
	if s.Ready {
		lines = append(lines,
			fmt.Sprintf("Azimuth:  %+.3f rad", s.Azimuth),
			fmt.Sprintf("Speed:    %+.0f (%.3f rad/s)", s.Speed, s.Velocity),
		)
	} else {
		lines = append(lines, "Orbit:    not attached")
	}
	lines = append(lines,
		fmt.Sprintf("Flips:    %d", s.Flips),
		fmt.Sprintf("Update:   %.2f ms", s.UpdateMs),
		fmt.Sprintf("Draw:     %.2f ms", s.DrawMs),
	)
	return lines
}

func (v *Viewer) drawOverlay() {
	lines := OverlayLines(v.stats())
	height := float32(overlayLineHeight*(len(lines)+1) + 10)

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
	gui.Panel(rl.Rectangle{X: overlayX, Y: overlayY, Width: overlayWidth, Height: height}, "Keyboard")
	for i, line := range lines {
		bounds := rl.Rectangle{
			X:      overlayX + 8,
			Y:      float32(overlayY + overlayLineHeight*(i+1) + 4),
			Width:  overlayWidth - 16,
			Height: overlayLineHeight,
		}
		gui.Label(bounds, line)
	}
	rl.DrawFPS(overlayX, int32(overlayY)+int32(height)+6)
}
