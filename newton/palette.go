package newton

import (
	"image/color"
	"math"
	"math/cmplx"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a hue, saturation, value triple with every component in [0, 1].
type HSV struct {
	H float64
	S float64
	V float64
}

var (
	// Divergent is used for trajectories that overflowed.
	Divergent = HSV{H: 0, S: 0, V: 1}
	// Indeterminate is used for trajectories that hit a domain error.
	Indeterminate = HSV{H: 0, S: 0, V: 0.5}
)

func (c HSV) RGBA() color.RGBA {
	r, g, b := colorful.Hsv(c.H*360, c.S, c.V).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ColorOfRoot colors z by its argument and darkens it by quality. Sentinels are handled
// before the angle is taken.
func ColorOfRoot(z complex128, quality float64) HSV {
	if math.IsInf(cmplx.Abs(z), 1) {
		return Divergent
	}
	if isNaN(z) {
		return Indeterminate
	}

	theta := math.Atan2(imag(z), real(z))
	if theta < 0 {
		theta += 2 * math.Pi
	}
	hue := theta / (2 * math.Pi)
	if hue >= 1 {
		hue = 0
	}
	return HSV{H: hue, S: 1, V: quality}
}

// ColorOfIterations is a gray level that brightens with the iteration count. A larger
// convergence exponent lifts the low counts.
func ColorOfIterations(i int, iterations int, colorConvergence float64) HSV {
	fraction := clamp(float64(i) / float64(iterations))
	return HSV{H: 0, S: 0, V: math.Pow(fraction, 1/colorConvergence)}
}
