package main

import (
	"bytes"
	"flag"
	"path/filepath"

	"NewtonFractal/coordinator"
	"NewtonFractal/misc"
	"NewtonFractal/newton"
	"NewtonFractal/plot"

	"github.com/BrugadaSyndrome/bslogger"
)

var (
	density, plotFunction bool
	settingsFile          string
)

func parseArguments() {
	flag.StringVar(&settingsFile, "settings", "", "Json file with the render settings")
	flag.BoolVar(&plotFunction, "plot", false, "Plot the function and its first two derivatives along the real axis")
	flag.BoolVar(&density, "density", false, "Render the root density map of random polynomials")
	flag.Parse()
}

func main() {
	parseArguments()
	logger := bslogger.NewLogger("NewtonFractal", bslogger.Normal, nil)

	settings, err := coordinator.DefaultSettings()
	if settingsFile != "" {
		settings, err = coordinator.NewSettings(settingsFile)
	}
	misc.CheckError(err, logger, misc.Fatal)

	c, err := coordinator.NewCoordinator(settings)
	misc.CheckError(err, logger, misc.Fatal)
	defer c.Close()

	switch {
	case plotFunction:
		function, err := settings.FrameFunction(0)
		misc.CheckError(err, logger, misc.Fatal)

		var buffer bytes.Buffer
		err = plot.Render(&buffer, function, newton.NewDifferentiator(settings.NewtonSettings), plot.Settings{})
		misc.CheckError(err, logger, misc.Fatal)

		path := filepath.Join(c.RunPath(), "plot.png")
		_, err = misc.WriteFile(path, buffer.Bytes())
		misc.CheckError(err, logger, misc.Fatal)
		logger.Infof("Saved plot to %s", path)

	case density:
		path, err := c.RunDensity()
		misc.CheckError(err, logger, misc.Fatal)
		logger.Infof("Saved density map to %s", path)

	default:
		paths, err := c.Run()
		misc.CheckError(err, logger, misc.Fatal)
		logger.Infof("Done rendering %d frame(s)", len(paths))
	}
}
