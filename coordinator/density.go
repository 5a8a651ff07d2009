package coordinator

import (
	gimage "image"
	"image/color"
	"image/draw"
	"math"
	"math/cmplx"
	"math/rand"
	"path/filepath"
	"time"

	"NewtonFractal/functions"
	"NewtonFractal/misc"
	"NewtonFractal/newton"
)

const heatStep = 10

// densitySettings configure the root density map: where Newton lands for random integer
// polynomials started from a random point of the unit circle.
type densitySettings struct {
	Degree         int
	MaxCoefficient int
	Samples        int
	Seed           int64
}

func (ds *densitySettings) Verify() {
	if ds.Degree < 1 {
		ds.Degree = 20
	}
	if ds.MaxCoefficient < 1 {
		ds.MaxCoefficient = 1
	}
	if ds.Samples < 1 {
		ds.Samples = 100000
	}
}

// DensityMap brightens the pixel where each sample's final iterate lands. Samples that fail
// or land off the image leave no trace.
func DensityMap(settings Settings, rng *rand.Rand) *gimage.RGBA {
	viewport := settings.Viewport
	engine := newton.NewEngine(settings.NewtonSettings)
	img := gimage.NewRGBA(gimage.Rect(0, 0, viewport.Width, viewport.Height))
	draw.Draw(img, img.Bounds(), &gimage.Uniform{C: color.RGBA{A: 255}}, gimage.Point{}, draw.Src)

	for i := 0; i < settings.Density.Samples; i++ {
		polynomial := functions.RandomPolynomial(rng, settings.Density.Degree, settings.Density.MaxCoefficient)
		guess := cmplx.Pow(1i, complex(4*rng.Float64(), 0))
		trajectory := engine.Newton(polynomial.Function(), guess)

		x, y := viewport.ToPixel(trajectory.Final())
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		point := gimage.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
		if !point.In(img.Bounds()) {
			continue
		}
		heat(img, point)
	}
	return img
}

func heat(img *gimage.RGBA, point gimage.Point) {
	current := img.RGBAAt(point.X, point.Y)
	current.R = misc.AddUint8(current.R, heatStep)
	current.G = misc.AddUint8(current.G, heatStep)
	current.B = misc.AddUint8(current.B, heatStep)
	img.SetRGBA(point.X, point.Y, current)
}

// RunDensity renders the root density map of the run and saves it next to its settings.
func (c *Coordinator) RunDensity() (string, error) {
	defer c.Close()
	seed := c.settings.Density.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c.logger.Infof("Sampling %d random polynomials of degree %d (seed %d)", c.settings.Density.Samples, c.settings.Density.Degree, seed)

	startTime := time.Now()
	img := DensityMap(c.settings, rand.New(rand.NewSource(seed)))
	path := filepath.Join(c.runPath, "density.png")
	if err := savePNG(path, img); err != nil {
		return "", err
	}
	c.logger.Infof("Saved density map to %s in %s", path, time.Since(startTime))
	return path, nil
}
