// Package functions is a catalog of iteration functions that renders can refer to by name.
package functions

import (
	"fmt"
	"math/cmplx"
	"sort"

	"NewtonFractal/newton"
)

// Family is a one parameter family of functions. Movies render one frame per parameter value.
type Family func(c complex128) newton.Function

var catalog = map[string]func() newton.Function{
	"cubic":   Cubic,
	"shifted": Shifted,
	"gamma":   func() newton.Function { return newton.Numeric("gamma", Gamma) },
	"zeta":    func() newton.Function { return newton.Numeric("zeta", Zeta) },
	"sin":     Sin,
}

var families = map[string]Family{
	"rotating": Rotating,
	"cubic":    func(c complex128) newton.Function { return newton.CubicThrough(c) },
}

func Lookup(name string) (newton.Function, error) {
	constructor, ok := catalog[name]
	if !ok {
		return newton.Function{}, fmt.Errorf("unknown function %q, expected one of %v", name, Names())
	}
	return constructor(), nil
}

func LookupFamily(name string) (Family, error) {
	family, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("unknown function family %q", name)
	}
	return family, nil
}

func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cubic is z^3 - 1, whose roots are the cube roots of unity.
func Cubic() newton.Function {
	return newton.Analytic(
		"z^3 - 1",
		func(z complex128) complex128 { return z*z*z - 1 },
		func(z complex128) complex128 { return 3 * z * z },
		func(z complex128) complex128 { return 6 * z },
	)
}

// Shifted is z^3 - 2z + 2. Starting points near 0 and 1 cycle between each other.
func Shifted() newton.Function {
	return newton.Analytic(
		"z^3 - 2z + 2",
		func(z complex128) complex128 { return z*z*z - 2*z + 2 },
		func(z complex128) complex128 { return 3*z*z - 2 },
		func(z complex128) complex128 { return 6 * z },
	)
}

func Sin() newton.Function {
	return newton.Numeric("sin(z)", cmplx.Sin)
}

// Rotating has roots (-1)^c, i^c and (-i)^c, so moving c from 0 to 4 spins the roots around.
func Rotating(c complex128) newton.Function {
	r0 := cmplx.Pow(-1, c)
	r1 := cmplx.Pow(1i, c)
	r2 := cmplx.Pow(-1i, c)
	return newton.Numeric(
		fmt.Sprintf("(z - (-1)^c)(z - i^c)(z - (-i)^c), c = %v", c),
		func(z complex128) complex128 { return (z - r0) * (z - r1) * (z - r2) },
	)
}
