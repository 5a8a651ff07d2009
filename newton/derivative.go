package newton

import (
	"errors"
	"fmt"
)

var ErrInvalidOrder = errors.New("derivative order must be a positive integer")

// Differentiator approximates derivatives with forward differences. Step is the same value as
// the render tolerance: both are the smallest change the render cares about.
type Differentiator struct {
	Step float64
}

func NewDifferentiator(settings Settings) Differentiator {
	return Differentiator{Step: settings.Tolerance}
}

// Derivative returns the order-th forward difference of f at z,
//
//	sum_{k=0..n} (-1)^(n-k) C(n,k) f(z+kh) / h^n
//
// which is what differentiating the first order difference quotient n times produces.
func (d Differentiator) Derivative(f Func, z complex128, order int) (complex128, error) {
	if order < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	return d.stencil(f, z, order), nil
}

func (d Differentiator) stencil(f Func, z complex128, order int) complex128 {
	h := complex(d.Step, 0)

	// Binomial coefficients with alternating sign, built up one term at a time
	coefficient := 1.0
	if order%2 == 1 {
		coefficient = -1
	}
	var sum complex128
	for k := 0; k <= order; k++ {
		sum += complex(coefficient, 0) * f(z+complex(float64(k), 0)*h)
		coefficient *= -float64(order-k) / float64(k+1)
	}

	for i := 0; i < order; i++ {
		sum /= h
	}
	return sum
}

// Of prefers the derivative the function knows in closed form and falls back to the stencil.
func (d Differentiator) Of(f Function, z complex128, order int) complex128 {
	if value, ok := f.DerivativeHint(z, order); ok {
		return value
	}
	return d.stencil(f.F, z, order)
}
