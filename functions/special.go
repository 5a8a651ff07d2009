package functions

import (
	"math"
	"math/cmplx"
)

// EulerMascheroni is the Euler–Mascheroni constant.
const EulerMascheroni = 0.57721566490153286

const (
	gammaFactors = 100
	zetaTerms    = 10
)

// Gamma uses the Weierstrass product, which converges faster than Euler's. The error at i is
// around half a percent.
func Gamma(z complex128) complex128 {
	product, previous := complex(1, 0), complex(0, 0)
	for n := 1; n <= gammaFactors && product != previous; n++ {
		previous = product
		zn := z / complex(float64(n), 0)
		product *= cmplx.Exp(zn) / (1 + zn)
	}
	return cmplx.Exp(-EulerMascheroni*z) * product / z
}

// stieltjes holds estimates of the Stieltjes constants gamma_n, gamma_0 being exact.
var stieltjes = func() []float64 {
	g := make([]float64, zetaTerms)
	g[0] = EulerMascheroni
	for n := 1; n < zetaTerms; n++ {
		sum := 0.0
		for k := 1; k <= zetaTerms; k++ {
			sum += math.Pow(math.Log(float64(k)), float64(n)) / float64(k)
		}
		g[n] = sum - math.Pow(math.Log(zetaTerms), float64(n+1))/float64(n+1)
	}
	return g
}()

// Zeta evaluates the Laurent series of the Riemann zeta function around 1.
func Zeta(z complex128) complex128 {
	if z == 1 {
		return complex(math.Inf(1), 0)
	}
	sum := 1 / (z - 1)
	factorial := 1.0
	power := complex(1, 0)
	for n := 0; n < zetaTerms; n++ {
		if n > 0 {
			factorial *= float64(n)
			power *= 1 - z
		}
		sum += complex(stieltjes[n]/factorial, 0) * power
	}
	return sum
}
