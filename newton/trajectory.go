package newton

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	// Exhausted means the iteration cap was reached before the correction got below tolerance.
	Exhausted Outcome = iota
	Converged
	// Domain means the function or its derivative was undefined at the last iterate.
	Domain
	// Overflow means an intermediate value left the representable range.
	Overflow
)

type Outcome int

func (o Outcome) String() string {
	switch o {
	case Exhausted:
		return "Exhausted"
	case Converged:
		return "Converged"
	case Domain:
		return "Domain"
	case Overflow:
		return "Overflow"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Trajectory holds the iterates of one root finding run. When the run failed, the last
// point is a sentinel: NaN for Domain and +Inf for Overflow.
type Trajectory struct {
	Outcome Outcome
	Points  []complex128
}

func (t *Trajectory) Len() int {
	return len(t.Points)
}

// Steps counts the iterates actually computed, leaving out a failure sentinel.
func (t *Trajectory) Steps() int {
	if (t.Outcome == Domain || t.Outcome == Overflow) && len(t.Points) > 0 {
		return len(t.Points) - 1
	}
	return len(t.Points)
}

// Final returns the last iterate, which may be a sentinel.
func (t *Trajectory) Final() complex128 {
	if len(t.Points) == 0 {
		return cmplx.NaN()
	}
	return t.Points[len(t.Points)-1]
}

func (t *Trajectory) String() string {
	return fmt.Sprintf("{Trajectory Outcome: %s Length: %d Final: %v}", t.Outcome, len(t.Points), t.Final())
}

// NaNSentinel marks a trajectory that ended on a domain error.
func NaNSentinel() complex128 {
	return complex(math.NaN(), math.NaN())
}

// InfSentinel marks a trajectory that ended on overflow.
func InfSentinel() complex128 {
	return complex(math.Inf(1), 0)
}

func isNaN(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z))
}

func isInf(z complex128) bool {
	return math.IsInf(real(z), 0) || math.IsInf(imag(z), 0)
}

// isFinite is true when z is neither NaN nor infinite in either component.
func isFinite(z complex128) bool {
	return !isNaN(z) && !isInf(z)
}
