package newton

import (
	"image/color"

	"NewtonFractal/task"
)

// Fractal computes the color of single pixels. Every method is a pure function of its
// arguments and the values given to NewFractal, so pixels can be computed in any order and
// on any goroutine.
type Fractal struct {
	engine   Engine
	function Function
	settings Settings
	viewport Viewport
}

func NewFractal(settings Settings, viewport Viewport, function Function) Fractal {
	return Fractal{
		engine:   NewEngine(settings),
		function: function,
		settings: settings,
		viewport: viewport,
	}
}

func (f *Fractal) Viewport() Viewport {
	return f.viewport
}

// GetPointsToCalculate returns the sample points for a pixel, SuperSampling^2 of them laid
// out on a regular sub pixel grid.
func (f *Fractal) GetPointsToCalculate(coordinate task.Coordinate) []complex128 {
	subPixels := make([]float64, f.settings.SuperSampling)
	if f.settings.SuperSampling > 1 {
		for i := 0; i < f.settings.SuperSampling; i++ {
			subPixels[i] = ((0.5 + float64(i)) / float64(f.settings.SuperSampling)) - 0.5
		}
	}

	points := make([]complex128, 0, f.settings.SuperSampling*f.settings.SuperSampling)
	for _, sx := range subPixels {
		for _, sy := range subPixels {
			points = append(points, f.viewport.ToComplex(float64(coordinate.Column)+sx, float64(coordinate.Row)+sy))
		}
	}
	return points
}

func (f *Fractal) TrajectoryMultiple(points []complex128) []Trajectory {
	trajectories := make([]Trajectory, len(points))
	for i, point := range points {
		trajectories[i] = f.engine.Trajectory(f.function, point)
	}
	return trajectories
}

func (f *Fractal) GetColor(t Trajectory) HSV {
	if f.settings.Coloring == ByIterations {
		return ColorOfIterations(t.Steps(), f.settings.Iterations, f.settings.ColorConvergence)
	}

	quality := 1.0
	if f.settings.SmoothColoring {
		quality = f.settings.Smooth(t)
	}
	return ColorOfRoot(t.Final(), quality)
}

// GetColorMultiple averages the colors of the samples of one pixel.
func (f *Fractal) GetColorMultiple(trajectories []Trajectory) color.RGBA {
	if len(trajectories) == 0 {
		return Indeterminate.RGBA()
	}

	var r, g, b int
	for _, t := range trajectories {
		sample := f.GetColor(t).RGBA()
		r += int(sample.R)
		g += int(sample.G)
		b += int(sample.B)
	}
	divisor := len(trajectories)
	return color.RGBA{R: uint8(r / divisor), G: uint8(g / divisor), B: uint8(b / divisor), A: 255}
}

// Pixel computes the color of one pixel along with the root its first converged sample found.
func (f *Fractal) Pixel(coordinate task.Coordinate) task.Pixel {
	trajectories := f.TrajectoryMultiple(f.GetPointsToCalculate(coordinate))
	pixel := task.Pixel{
		Color:  f.GetColorMultiple(trajectories),
		Column: coordinate.Column,
		Row:    coordinate.Row,
	}
	for _, t := range trajectories {
		if t.Outcome == Converged {
			pixel.Converged = true
			pixel.Root = t.Final()
			break
		}
	}
	return pixel
}
