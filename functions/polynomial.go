package functions

import (
	"fmt"
	"math/rand"

	"NewtonFractal/newton"
)

// Polynomial is sum Coefficients[i] z^i.
type Polynomial struct {
	Coefficients []complex128
}

// RandomPolynomial draws integer coefficients uniformly from [-maxCoefficient, maxCoefficient].
func RandomPolynomial(rng *rand.Rand, degree int, maxCoefficient int) Polynomial {
	coefficients := make([]complex128, degree+1)
	for i := range coefficients {
		coefficients[i] = complex(float64(rng.Intn(2*maxCoefficient+1)-maxCoefficient), 0)
	}
	return Polynomial{Coefficients: coefficients}
}

func (p Polynomial) Evaluate(z complex128) complex128 {
	var sum complex128
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		sum = sum*z + p.Coefficients[i]
	}
	return sum
}

func (p Polynomial) Derivative() Polynomial {
	if len(p.Coefficients) <= 1 {
		return Polynomial{Coefficients: []complex128{0}}
	}
	coefficients := make([]complex128, len(p.Coefficients)-1)
	for i := 1; i < len(p.Coefficients); i++ {
		coefficients[i-1] = complex(float64(i), 0) * p.Coefficients[i]
	}
	return Polynomial{Coefficients: coefficients}
}

func (p Polynomial) String() string {
	return fmt.Sprintf("polynomial%v", p.Coefficients)
}

// Function exposes p and its first two derivatives in closed form.
func (p Polynomial) Function() newton.Function {
	d1 := p.Derivative()
	d2 := d1.Derivative()
	return newton.Analytic(p.String(), p.Evaluate, d1.Evaluate, d2.Evaluate)
}
