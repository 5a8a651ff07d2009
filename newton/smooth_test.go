package newton

import (
	"math"
	"testing"
)

func TestSmoothInterpolates(t *testing.T) {
	settings := DefaultSettings()
	trajectory := Trajectory{Outcome: Converged, Points: []complex128{1 + 1e-2, 1 + 1e-4, 1}}

	// log distances -2 and -4 decades reach the -6 decade tolerance two steps later
	want := 1 - (3+2)/20.0
	if got := settings.Smooth(trajectory); math.Abs(got-want) > 1e-9 {
		t.Errorf("Smooth = %v, want %v", got, want)
	}

	settings.CorrectionWeight = 0.5
	want = 1 - (3+1)/20.0
	if got := settings.Smooth(trajectory); math.Abs(got-want) > 1e-9 {
		t.Errorf("Smooth with half correction = %v, want %v", got, want)
	}
}

func TestSmoothFallsBack(t *testing.T) {
	settings := DefaultSettings()
	tests := []struct {
		name   string
		points []complex128
		want   float64
	}{
		{"short", []complex128{1}, 1 - 1/20.0},
		{"two points", []complex128{2, 1}, 1 - 2/20.0},
		{"repeated pre-root iterates", []complex128{2, 2, 1}, 1 - 3/20.0},
		{"repeated root", []complex128{3, 1, 1}, 1 - 3/20.0},
		{"nan sentinel", []complex128{3, 2, NaNSentinel()}, 1 - 3/20.0},
		{"inf sentinel", []complex128{3, 2, InfSentinel()}, 1 - 3/20.0},
	}
	for _, tt := range tests {
		got := settings.Smooth(Trajectory{Points: tt.points})
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: Smooth = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSmoothBounded(t *testing.T) {
	f := Analytic(
		"z^3 - 2z + 2",
		func(z complex128) complex128 { return z*z*z - 2*z + 2 },
		func(z complex128) complex128 { return 3*z*z - 2 },
	)
	viewport := NewViewport(0, 2, 40, 30)
	for _, method := range []Method{Newton, Halley, Cubic} {
		settings := DefaultSettings()
		settings.Method = method
		engine := NewEngine(settings)
		for _, point := range viewport.Grid() {
			quality := settings.Smooth(engine.Trajectory(f, point))
			if math.IsNaN(quality) || quality < 0 || quality > 1 {
				t.Fatalf("%s from %v: Smooth = %v, want a value in [0, 1]", method, point, quality)
			}
		}
	}
}

func TestSmoothClampsSlowConvergence(t *testing.T) {
	settings := DefaultSettings()
	points := make([]complex128, 20)
	for i := range points {
		points[i] = complex(float64(len(points)-i), 0)
	}
	if got := settings.Smooth(Trajectory{Points: points}); got != 0 {
		t.Errorf("Smooth of a full trajectory = %v, want 0", got)
	}
}
