package newton

import "fmt"

// Func is a complex function sampled by the engine. It is never inspected, only evaluated.
type Func func(z complex128) complex128

const (
	NumericOnly Kind = iota
	HasAnalyticDerivative
)

type Kind int

func (k Kind) String() string {
	switch k {
	case NumericOnly:
		return "NumericOnly"
	case HasAnalyticDerivative:
		return "HasAnalyticDerivative"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Function is an iteration function together with whatever closed form derivatives the
// caller knows. Derivatives[0] is f', Derivatives[1] is f'' and so on; any order that is
// missing is approximated with a Differentiator.
type Function struct {
	Name        string
	F           Func
	Derivatives []Func
}

// Numeric wraps f with no known derivatives.
func Numeric(name string, f Func) Function {
	return Function{Name: name, F: f}
}

// Analytic wraps f with closed form derivatives, first order first.
func Analytic(name string, f Func, derivatives ...Func) Function {
	return Function{Name: name, F: f, Derivatives: derivatives}
}

func (f Function) Kind() Kind {
	if len(f.Derivatives) > 0 {
		return HasAnalyticDerivative
	}
	return NumericOnly
}

func (f Function) Evaluate(z complex128) complex128 {
	return f.F(z)
}

// DerivativeHint returns the closed form derivative of the given order when one is known.
func (f Function) DerivativeHint(z complex128, order int) (complex128, bool) {
	if order < 1 || order > len(f.Derivatives) || f.Derivatives[order-1] == nil {
		return 0, false
	}
	return f.Derivatives[order-1](z), true
}
