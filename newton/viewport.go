package newton

import (
	"fmt"

	"NewtonFractal/misc"
)

// Viewport maps pixels (origin top left, y growing downwards) onto a rectangle of the complex
// plane centered on (CenterX, CenterY).
type Viewport struct {
	CenterX    float64
	CenterY    float64
	HalfHeight float64
	HalfWidth  float64
	Height     int
	Width      int
}

// NewViewport derives the half height from the aspect ratio of the image.
func NewViewport(center complex128, halfWidth float64, width int, height int) Viewport {
	v := Viewport{
		CenterX:   real(center),
		CenterY:   imag(center),
		HalfWidth: halfWidth,
		Height:    height,
		Width:     width,
	}
	v.Verify()
	return v
}

// ViewportFromBounds covers [rMin, rMax] x [iMin, iMax].
func ViewportFromBounds(rMin float64, rMax float64, iMin float64, iMax float64, width int, height int) Viewport {
	return Viewport{
		CenterX:    (rMin + rMax) / 2,
		CenterY:    (iMin + iMax) / 2,
		HalfHeight: (iMax - iMin) / 2,
		HalfWidth:  (rMax - rMin) / 2,
		Height:     height,
		Width:      width,
	}
}

func (v *Viewport) Verify() {
	if v.Width <= 0 {
		v.Width = 500
	}
	if v.Height <= 0 {
		v.Height = 250
	}
	if v.HalfWidth <= 0 {
		v.HalfWidth = 2
	}
	if v.HalfHeight <= 0 {
		v.HalfHeight = v.HalfWidth * float64(v.Height) / float64(v.Width)
	}
}

func (v *Viewport) String() string {
	return fmt.Sprintf("{Viewport Center: (%g, %g) Half: (%g, %g) Size: %dx%d}", v.CenterX, v.CenterY, v.HalfWidth, v.HalfHeight, v.Width, v.Height)
}

// ToComplex converts a (possibly fractional) pixel coordinate to a point of the plane.
func (v *Viewport) ToComplex(x float64, y float64) complex128 {
	re := misc.LerpFloat64(v.CenterX-v.HalfWidth, v.CenterX+v.HalfWidth, x/float64(v.Width))
	im := misc.LerpFloat64(v.CenterY-v.HalfHeight, v.CenterY+v.HalfHeight, (float64(v.Height)-y)/float64(v.Height))
	return complex(re, im)
}

// ToPixel is the inverse of ToComplex.
func (v *Viewport) ToPixel(z complex128) (float64, float64) {
	x := (real(z) - (v.CenterX - v.HalfWidth)) / (2 * v.HalfWidth) * float64(v.Width)
	y := float64(v.Height) - (imag(z)-(v.CenterY-v.HalfHeight))/(2*v.HalfHeight)*float64(v.Height)
	return x, y
}

// Grid returns Width*Height sample points in row major order: the point for pixel (x, y) is
// at index y*Width + x.
func (v *Viewport) Grid() []complex128 {
	points := make([]complex128, 0, v.Width*v.Height)
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			points = append(points, v.ToComplex(float64(x), float64(y)))
		}
	}
	return points
}
