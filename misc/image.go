package misc

import (
	"math"
)

// LerpFloat64 maps 0 to v1, 1 to v2 and everything in between linearly.
func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}

func LerpComplex(v1 complex128, v2 complex128, fraction float64) complex128 {
	return v1 + (v2-v1)*complex(fraction, 0)
}

// AddUint8 adds delta to v, saturating at 255.
func AddUint8(v uint8, delta uint8) uint8 {
	if int(v)+int(delta) > math.MaxUint8 {
		return math.MaxUint8
	}
	return v + delta
}

func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func EaseInExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}
