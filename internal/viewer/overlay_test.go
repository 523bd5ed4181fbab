package viewer

import (
	"errors"
	"strings"
	"testing"

	"keyboard3d/internal/components"
)

func TestOverlayLinesReady(t *testing.T) {
	lines := OverlayLines(OverlayStats{
		Asset:   components.LoadReady,
		Ready:   true,
		Azimuth: -0.25,
		Speed:   -1,
		Flips:   3,
	})

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Asset:    ready", "Azimuth:  -0.250 rad", "Speed:    -1", "Flips:    3"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected %q in overlay:\n%s", want, joined)
		}
	}
}

func TestOverlayLinesFailed(t *testing.T) {
	lines := OverlayLines(OverlayStats{
		Asset: components.LoadFailed,
		Err:   errors.New("missing node \"Object_4\""),
	})

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Error:") || !strings.Contains(joined, "not attached") {
		t.Errorf("Expected error and detached orbit in overlay:\n%s", joined)
	}
}
