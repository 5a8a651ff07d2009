package newton

import (
	"errors"
	"math/cmplx"
	"testing"
)

func square(z complex128) complex128 { return z * z }

func cube(z complex128) complex128 { return z * z * z }

func TestDerivativeFirstOrder(t *testing.T) {
	d := Differentiator{Step: 1e-6}
	for _, z := range []complex128{0, 3, -1 + 2i, 0.5i} {
		got, err := d.Derivative(square, z, 1)
		if err != nil {
			t.Fatalf("Derivative(z^2, %v, 1) returned error %v", z, err)
		}
		if want := 2 * z; cmplx.Abs(got-want) > 1e-4 {
			t.Errorf("Derivative(z^2, %v, 1) = %v, want %v", z, got, want)
		}
	}
}

func TestDerivativeHigherOrders(t *testing.T) {
	tests := []struct {
		name  string
		f     Func
		order int
		step  float64
		want  complex128
	}{
		{"z^2 second", square, 2, 1e-3, 2},
		{"z^3 second", cube, 2, 1e-4, 12},
		{"z^3 third", cube, 3, 1e-2, 6},
	}
	for _, tt := range tests {
		d := Differentiator{Step: tt.step}
		got, err := d.Derivative(tt.f, 2, tt.order)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if cmplx.Abs(got-tt.want) > 1e-2 {
			t.Errorf("%s: Derivative = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDerivativeInvalidOrder(t *testing.T) {
	d := Differentiator{Step: 1e-6}
	for _, order := range []int{0, -1, -10} {
		if _, err := d.Derivative(square, 1, order); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("Derivative(order %d) error = %v, want ErrInvalidOrder", order, err)
		}
	}
}

func TestDerivativeStepFollowsTolerance(t *testing.T) {
	settings := DefaultSettings()
	settings.Tolerance = 1e-4
	if d := NewDifferentiator(settings); d.Step != 1e-4 {
		t.Errorf("NewDifferentiator step = %g, want 1e-4", d.Step)
	}
}

func TestOfPrefersAnalyticDerivative(t *testing.T) {
	d := Differentiator{Step: 1e-6}
	f := Analytic("fake", square, func(z complex128) complex128 { return 42 })

	if got := d.Of(f, 1, 1); got != 42 {
		t.Errorf("Of(order 1) = %v, want the closed form 42", got)
	}
	// No closed form for the second order so the stencil is used
	if got := d.Of(f, 1, 2); cmplx.Abs(got-2) > 1e-1 {
		t.Errorf("Of(order 2) = %v, want about 2", got)
	}
	if f.Kind() != HasAnalyticDerivative {
		t.Errorf("Kind() = %s, want HasAnalyticDerivative", f.Kind())
	}
	if k := Numeric("plain", square).Kind(); k != NumericOnly {
		t.Errorf("Kind() = %s, want NumericOnly", k)
	}
}
