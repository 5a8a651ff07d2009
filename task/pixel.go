package task

import (
	"fmt"
	"image/color"
)

type Pixel struct {
	Color  color.RGBA
	Column uint
	Row    uint

	// Root is only meaningful when Converged is set
	Converged bool
	Root      complex128
}

func (p *Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Color: %v ", p.Color)
	output += fmt.Sprintf("Column: %d ", p.Column)
	output += fmt.Sprintf("Row: %d ", p.Row)
	output += fmt.Sprintf("Converged: %t ", p.Converged)
	output += fmt.Sprintf("Root: %v}", p.Root)
	return output
}
