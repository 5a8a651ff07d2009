package newton

import (
	"math/cmplx"
)

// corrector computes the amount to subtract from z for one step. ok is false when the step
// could not be computed, in which case failure says why.
type corrector func(f Function, z complex128) (c complex128, failure Outcome, ok bool)

// Engine runs one of the root finding update rules from a starting point. It holds no state
// besides its settings so a single Engine may be shared by any number of goroutines.
type Engine struct {
	diff     Differentiator
	settings Settings
}

func NewEngine(settings Settings) Engine {
	return Engine{
		diff:     NewDifferentiator(settings),
		settings: settings,
	}
}

// Trajectory runs the configured method for a grid point. For Newton and Halley the point is
// the starting iterate of f. The Cubic method ignores f and instead iterates the cubic whose
// roots are the point and +-1, starting from the mean of those roots.
func (e *Engine) Trajectory(f Function, point complex128) Trajectory {
	switch e.settings.Method {
	case Halley:
		return e.Halley(f, point)
	case Cubic:
		return e.NormalizedCubic(point)
	default:
		return e.Newton(f, point)
	}
}

// Newton iterates z - f(z)/f'(z).
func (e *Engine) Newton(f Function, z0 complex128) Trajectory {
	return e.iterate(f, z0, e.newtonCorrection)
}

// Halley iterates z - 2ff' / (2f'^2 - ff'').
func (e *Engine) Halley(f Function, z0 complex128) Trajectory {
	return e.iterate(f, z0, e.halleyCorrection)
}

// NormalizedCubic runs Newton on (x - p)(x^2 - 1) starting at p/3, which keeps the iterates
// close to the cluster of roots.
func (e *Engine) NormalizedCubic(p complex128) Trajectory {
	return e.iterate(CubicThrough(p), p/3, e.newtonCorrection)
}

// CubicThrough returns the monic cubic with roots p, 1 and -1 with its derivatives.
func CubicThrough(p complex128) Function {
	return Analytic(
		"(z-p)(z^2-1)",
		func(z complex128) complex128 { return (z - p) * (z*z - 1) },
		func(z complex128) complex128 { return 3*z*z - 2*p*z - 1 },
		func(z complex128) complex128 { return 6*z - 2*p },
	)
}

func (e *Engine) iterate(f Function, z complex128, correction corrector) Trajectory {
	trajectory := Trajectory{
		Outcome: Exhausted,
		Points:  make([]complex128, 0, e.settings.Iterations),
	}

	for len(trajectory.Points) < e.settings.Iterations {
		trajectory.Points = append(trajectory.Points, z)

		c, failure, ok := correction(f, z)
		if !ok {
			trajectory.Outcome = failure
			trajectory.terminate(failure, e.settings.Iterations)
			return trajectory
		}

		if cmplx.Abs(c) < e.settings.Tolerance {
			// The current iterate is already recorded and is the root estimate
			trajectory.Outcome = Converged
			return trajectory
		}
		z -= c
		// A finite correction can still push the update out of range
		if failure, ok := check(z); !ok {
			trajectory.Outcome = failure
			trajectory.terminate(failure, e.settings.Iterations)
			return trajectory
		}
	}

	return trajectory
}

// terminate appends the sentinel for failure. A full trajectory has its last iterate replaced
// so the length never exceeds the cap.
func (t *Trajectory) terminate(failure Outcome, limit int) {
	sentinel := NaNSentinel()
	if failure == Overflow {
		sentinel = InfSentinel()
	}
	if len(t.Points) >= limit {
		t.Points[len(t.Points)-1] = sentinel
		return
	}
	t.Points = append(t.Points, sentinel)
}

func (e *Engine) newtonCorrection(f Function, z complex128) (complex128, Outcome, bool) {
	fz := f.Evaluate(z)
	if failure, ok := check(fz); !ok {
		return 0, failure, false
	}
	d1 := e.diff.Of(f, z, 1)
	if failure, ok := check(d1); !ok {
		return 0, failure, false
	}
	if d1 == 0 {
		return 0, Domain, false
	}

	c := fz / d1
	if failure, ok := check(c); !ok {
		return 0, failure, false
	}
	return c, Exhausted, true
}

func (e *Engine) halleyCorrection(f Function, z complex128) (complex128, Outcome, bool) {
	fz := f.Evaluate(z)
	if failure, ok := check(fz); !ok {
		return 0, failure, false
	}
	d1 := e.diff.Of(f, z, 1)
	if failure, ok := check(d1); !ok {
		return 0, failure, false
	}
	d2 := e.diff.Of(f, z, 2)
	if failure, ok := check(d2); !ok {
		return 0, failure, false
	}

	denominator := 2*d1*d1 - fz*d2
	if denominator == 0 {
		return 0, Domain, false
	}
	c := 2 * fz * d1 / denominator
	if failure, ok := check(c); !ok {
		return 0, failure, false
	}
	return c, Exhausted, true
}

// check maps a non-finite intermediate value to the failure it stands for. NaN takes
// precedence since NaN arithmetic can also carry infinite components.
func check(v complex128) (Outcome, bool) {
	if isNaN(v) {
		return Domain, false
	}
	if isInf(v) {
		return Overflow, false
	}
	return Exhausted, true
}
