package newton

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	Newton Method = iota
	Halley
	Cubic
)

type Method int

func (m Method) String() string {
	switch m {
	case Newton:
		return "Newton"
	case Halley:
		return "Halley"
	case Cubic:
		return "Cubic"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

const (
	ByRoot Coloring = iota
	ByIterations
)

type Coloring int

func (c Coloring) String() string {
	switch c {
	case ByRoot:
		return "ByRoot"
	case ByIterations:
		return "ByIterations"
	}
	return fmt.Sprintf("Coloring(%d)", int(c))
}

// Settings are the render constants shared by every pixel. They are filled in by Verify and
// must not change while a render is running.
type Settings struct {
	logger bslogger.Logger

	ColorConvergence float64
	Coloring         Coloring
	CorrectionWeight float64
	Iterations       int
	Method           Method
	SmoothColoring   bool
	SuperSampling    int
	Tolerance        float64
}

// DefaultSettings returns verified settings with every value at its default.
func DefaultSettings() Settings {
	s := Settings{SmoothColoring: true}
	_ = s.Verify()
	return s
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("NewtonSettings", bslogger.Normal, nil)

	if s.ColorConvergence <= 0 {
		s.ColorConvergence = 2
	}
	if s.Coloring < ByRoot || s.Coloring > ByIterations {
		s.logger.Warningf("Unknown coloring %d, using %s", s.Coloring, ByRoot)
		s.Coloring = ByRoot
	}
	if s.CorrectionWeight <= 0 {
		s.CorrectionWeight = 1
	}
	if s.Iterations <= 0 {
		s.Iterations = 20
	}
	if s.Method < Newton || s.Method > Cubic {
		return fmt.Errorf("unknown iteration method %d", s.Method)
	}
	if s.SuperSampling < 1 {
		s.SuperSampling = 1
	}
	if s.Tolerance <= 0 || s.Tolerance >= 1 {
		s.Tolerance = 1e-6
	}

	return nil
}

func (s *Settings) String() string {
	output := "{Settings "
	output += fmt.Sprintf("Method: %s ", s.Method)
	output += fmt.Sprintf("Coloring: %s ", s.Coloring)
	output += fmt.Sprintf("Iterations: %d ", s.Iterations)
	output += fmt.Sprintf("Tolerance: %g ", s.Tolerance)
	output += fmt.Sprintf("ColorConvergence: %g ", s.ColorConvergence)
	output += fmt.Sprintf("SmoothColoring: %t ", s.SmoothColoring)
	output += fmt.Sprintf("SuperSampling: %d}", s.SuperSampling)
	return output
}
