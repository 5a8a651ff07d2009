package newton

import (
	"math"
	"math/cmplx"
	"testing"
)

func unityCubic() Function {
	return Numeric("z^3 - 1", func(z complex128) complex128 { return z*z*z - 1 })
}

func analyticUnityCubic() Function {
	return Analytic(
		"z^3 - 1",
		func(z complex128) complex128 { return z*z*z - 1 },
		func(z complex128) complex128 { return 3 * z * z },
		func(z complex128) complex128 { return 6 * z },
	)
}

func testEngine(method Method, iterations int) Engine {
	settings := DefaultSettings()
	settings.Method = method
	settings.Iterations = iterations
	return NewEngine(settings)
}

func TestNewtonAtRoot(t *testing.T) {
	engine := testEngine(Newton, 20)
	for _, f := range []Function{unityCubic(), analyticUnityCubic()} {
		trajectory := engine.Newton(f, 1)
		if trajectory.Len() != 1 {
			t.Errorf("%s: Newton(1) length = %d, want 1", f.Kind(), trajectory.Len())
		}
		if trajectory.Outcome != Converged {
			t.Errorf("%s: Newton(1) outcome = %s, want Converged", f.Kind(), trajectory.Outcome)
		}
		if trajectory.Final() != 1 {
			t.Errorf("%s: Newton(1) final = %v, want 1+0i", f.Kind(), trajectory.Final())
		}
	}
}

func TestNewtonZeroDerivative(t *testing.T) {
	engine := testEngine(Newton, 20)
	for _, f := range []Function{unityCubic(), analyticUnityCubic()} {
		trajectory := engine.Newton(f, 0)
		if trajectory.Outcome != Domain {
			t.Errorf("%s: Newton(0) outcome = %s, want Domain", f.Kind(), trajectory.Outcome)
		}
		if trajectory.Len() != 2 {
			t.Errorf("%s: Newton(0) length = %d, want 2", f.Kind(), trajectory.Len())
		}
		if !isNaN(trajectory.Final()) {
			t.Errorf("%s: Newton(0) final = %v, want NaN sentinel", f.Kind(), trajectory.Final())
		}
	}
}

func TestHalleyZeroDerivative(t *testing.T) {
	engine := testEngine(Halley, 20)
	for _, f := range []Function{unityCubic(), analyticUnityCubic()} {
		trajectory := engine.Halley(f, 0)
		if trajectory.Outcome != Domain {
			t.Errorf("%s: Halley(0) outcome = %s, want Domain", f.Kind(), trajectory.Outcome)
		}
		if trajectory.Len() != 2 {
			t.Errorf("%s: Halley(0) length = %d, want 2", f.Kind(), trajectory.Len())
		}
		if !isNaN(trajectory.Final()) {
			t.Errorf("%s: Halley(0) final = %v, want NaN sentinel", f.Kind(), trajectory.Final())
		}
	}
}

func TestNewtonConvergesNearRoots(t *testing.T) {
	engine := testEngine(Newton, 20)
	roots := []complex128{1, cmplx.Rect(1, 2*math.Pi/3), cmplx.Rect(1, -2*math.Pi/3)}
	for _, f := range []Function{unityCubic(), analyticUnityCubic()} {
		for _, root := range roots {
			start := root + 0.05 + 0.03i
			trajectory := engine.Newton(f, start)
			if trajectory.Outcome != Converged {
				t.Errorf("%s: Newton(%v) outcome = %s, want Converged", f.Kind(), start, trajectory.Outcome)
				continue
			}
			if d := cmplx.Abs(trajectory.Final() - root); d > 2e-6 {
				t.Errorf("%s: Newton(%v) final = %v, %g away from %v", f.Kind(), start, trajectory.Final(), d, root)
			}
		}
	}
}

func TestHalleyConverges(t *testing.T) {
	engine := testEngine(Halley, 20)
	for _, f := range []Function{unityCubic(), analyticUnityCubic()} {
		trajectory := engine.Halley(f, 1.2+0.1i)
		if trajectory.Outcome != Converged {
			t.Fatalf("%s: Halley outcome = %s, want Converged", f.Kind(), trajectory.Outcome)
		}
		if d := cmplx.Abs(trajectory.Final() - 1); d > 1e-5 {
			t.Errorf("%s: Halley final = %v, want 1", f.Kind(), trajectory.Final())
		}
	}
}

func TestHalleyTakesFewerStepsThanNewton(t *testing.T) {
	f := analyticUnityCubic()
	newtonEngine, halleyEngine := testEngine(Newton, 50), testEngine(Halley, 50)
	plain := newtonEngine.Newton(f, 2+1i)
	cubic := halleyEngine.Halley(f, 2+1i)
	if cubic.Len() > plain.Len() {
		t.Errorf("Halley took %d steps, Newton %d", cubic.Len(), plain.Len())
	}
}

func TestNormalizedCubic(t *testing.T) {
	engine := testEngine(Cubic, 50)
	trajectory := engine.NormalizedCubic(2)
	if cmplx.Abs(trajectory.Points[0]-2.0/3) > 1e-15 {
		t.Errorf("NormalizedCubic(2) started at %v, want 2/3", trajectory.Points[0])
	}
	if trajectory.Outcome != Converged {
		t.Fatalf("NormalizedCubic(2) outcome = %s, want Converged", trajectory.Outcome)
	}
	if d := cmplx.Abs(trajectory.Final() - 1); d > 1e-6 {
		t.Errorf("NormalizedCubic(2) final = %v, want 1", trajectory.Final())
	}

	// Trajectory dispatches on the method and ignores the function for Cubic
	dispatched := engine.Trajectory(Function{}, 2)
	if dispatched.Len() != trajectory.Len() || dispatched.Final() != trajectory.Final() {
		t.Errorf("Trajectory(Cubic) = %v, want %v", dispatched.String(), trajectory.String())
	}
}

func TestCubicThroughRoots(t *testing.T) {
	p := 0.3 - 0.7i
	f := CubicThrough(p)
	for _, root := range []complex128{p, 1, -1} {
		if v := f.Evaluate(root); v != 0 {
			t.Errorf("CubicThrough(%v) at %v = %v, want 0", p, root, v)
		}
	}
}

func TestOverflowSentinel(t *testing.T) {
	engine := testEngine(Newton, 20)
	f := Analytic("inf",
		func(z complex128) complex128 { return cmplx.Inf() },
		func(z complex128) complex128 { return 1 },
	)
	trajectory := engine.Newton(f, 1)
	if trajectory.Outcome != Overflow {
		t.Errorf("outcome = %s, want Overflow", trajectory.Outcome)
	}
	if !math.IsInf(real(trajectory.Final()), 1) {
		t.Errorf("final = %v, want +Inf sentinel", trajectory.Final())
	}
	if trajectory.Len() != 2 {
		t.Errorf("length = %d, want 2", trajectory.Len())
	}
}

func TestUpdateOverflow(t *testing.T) {
	// The correction is finite but subtracting it leaves the float64 range
	f := Analytic("huge",
		func(z complex128) complex128 { return 1.7e308 },
		func(z complex128) complex128 { return 1 },
	)
	tests := []struct {
		iterations int
		length     int
	}{
		{20, 2},
		{1, 1},
	}
	for _, tt := range tests {
		engine := testEngine(Newton, tt.iterations)
		trajectory := engine.Newton(f, -1.7e308)
		if trajectory.Outcome != Overflow {
			t.Errorf("cap %d: outcome = %s, want Overflow", tt.iterations, trajectory.Outcome)
		}
		if trajectory.Len() != tt.length {
			t.Errorf("cap %d: length = %d, want %d", tt.iterations, trajectory.Len(), tt.length)
		}
		if !math.IsInf(real(trajectory.Final()), 1) {
			t.Errorf("cap %d: final = %v, want +Inf sentinel", tt.iterations, trajectory.Final())
		}
		for _, z := range trajectory.Points[:trajectory.Len()-1] {
			if !isFinite(z) {
				t.Errorf("cap %d: non-finite iterate %v before the sentinel", tt.iterations, z)
			}
		}
	}
}

func TestDomainSentinel(t *testing.T) {
	engine := testEngine(Halley, 20)
	f := Numeric("nan", func(z complex128) complex128 {
		if real(z) < 0 {
			return NaNSentinel()
		}
		return z + 1
	})
	// The first step lands on -1 where f is undefined
	trajectory := engine.Halley(f, 0)
	if trajectory.Outcome != Domain {
		t.Errorf("outcome = %s, want Domain", trajectory.Outcome)
	}
	if !isNaN(trajectory.Final()) {
		t.Errorf("final = %v, want NaN sentinel", trajectory.Final())
	}
}

func TestIterationCap(t *testing.T) {
	engine := testEngine(Newton, 20)
	// exp has no roots, every step moves one to the left
	f := Analytic("exp", cmplx.Exp, cmplx.Exp)
	trajectory := engine.Newton(f, 0)
	if trajectory.Outcome != Exhausted {
		t.Errorf("outcome = %s, want Exhausted", trajectory.Outcome)
	}
	if trajectory.Len() != 20 {
		t.Errorf("length = %d, want 20", trajectory.Len())
	}
	if !isFinite(trajectory.Final()) {
		t.Errorf("final = %v, want a finite iterate", trajectory.Final())
	}
}

func TestSentinelRespectsCap(t *testing.T) {
	engine := testEngine(Newton, 1)
	f := Numeric("nan", func(z complex128) complex128 { return NaNSentinel() })
	trajectory := engine.Newton(f, 3)
	if trajectory.Len() != 1 {
		t.Errorf("length = %d, want 1", trajectory.Len())
	}
	if !isNaN(trajectory.Final()) {
		t.Errorf("final = %v, want NaN sentinel", trajectory.Final())
	}
}

func TestTrajectoryNeverExceedsCap(t *testing.T) {
	f := Analytic(
		"z^3 - 2z + 2",
		func(z complex128) complex128 { return z*z*z - 2*z + 2 },
		func(z complex128) complex128 { return 3*z*z - 2 },
	)
	viewport := NewViewport(0, 2, 24, 16)
	for _, method := range []Method{Newton, Halley, Cubic} {
		engine := testEngine(method, 12)
		for _, point := range viewport.Grid() {
			trajectory := engine.Trajectory(f, point)
			if trajectory.Len() > 12 {
				t.Fatalf("%s from %v: length %d exceeds cap", method, point, trajectory.Len())
			}
			for _, z := range trajectory.Points[:trajectory.Len()-1] {
				if !isFinite(z) {
					t.Fatalf("%s from %v: sentinel %v before the end", method, point, z)
				}
			}
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Domain.String(), "Domain"},
		{Outcome(7).String(), "Outcome(7)"},
		{HasAnalyticDerivative.String(), "HasAnalyticDerivative"},
		{Kind(-1).String(), "Kind(-1)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %s, want %s", tt.got, tt.want)
		}
	}
}
