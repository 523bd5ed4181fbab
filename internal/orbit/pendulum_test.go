package orbit

import "testing"

func TestSwingAtOrBeyondNegativeThreshold(t *testing.T) {
	for _, azimuth := range []float32{-0.5, -0.51, -1, -3.14} {
		for _, speed := range []float32{1, -1} {
			if got := Swing(azimuth, speed, SwingThreshold); got != -1 {
				t.Errorf("Swing(%v, %v): expected -1, got %v", azimuth, speed, got)
			}
		}
	}
}

func TestSwingAtOrBeyondPositiveThreshold(t *testing.T) {
	for _, azimuth := range []float32{0.5, 0.51, 1, 3.14} {
		for _, speed := range []float32{1, -1} {
			if got := Swing(azimuth, speed, SwingThreshold); got != 1 {
				t.Errorf("Swing(%v, %v): expected 1, got %v", azimuth, speed, got)
			}
		}
	}
}

func TestSwingHysteresisBand(t *testing.T) {
	for _, azimuth := range []float32{-0.49, -0.25, 0, 0.25, 0.49} {
		for _, speed := range []float32{1, -1} {
			if got := Swing(azimuth, speed, SwingThreshold); got != speed {
				t.Errorf("Swing(%v, %v): expected unchanged speed, got %v", azimuth, speed, got)
			}
		}
	}
}

func TestSwingIdempotent(t *testing.T) {
	for _, azimuth := range []float32{-2, -0.5, -0.1, 0, 0.1, 0.5, 2} {
		for _, start := range []float32{1, -1} {
			first := Swing(azimuth, start, SwingThreshold)
			speed := first
			for i := 0; i < 10; i++ {
				speed = Swing(azimuth, speed, SwingThreshold)
				if speed != first {
					t.Fatalf("Swing(%v) drifted from %v to %v on repeat %d", azimuth, first, speed, i)
				}
			}
		}
	}
}

func TestSwingMagnitudeIsOne(t *testing.T) {
	for _, speed := range []float32{0, 0.3, -2, 5} {
		got := Swing(0, speed, SwingThreshold)
		if got != 1 && got != -1 {
			t.Errorf("Swing(0, %v): expected magnitude 1, got %v", speed, got)
		}
	}
}
