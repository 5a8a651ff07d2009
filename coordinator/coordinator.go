package coordinator

import (
	"encoding/json"
	"fmt"
	gimage "image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"NewtonFractal/misc"
	"NewtonFractal/newton"
	"NewtonFractal/task"
	"NewtonFractal/worker"

	"github.com/BrugadaSyndrome/bslogger"
)

var heartbeatInterval = 30 * time.Second

type frameImage struct {
	Image      *gimage.RGBA
	PixelsLeft uint
	Roots      map[complex128]struct{}
}

// Coordinator splits every frame of a run into tasks, fans them out to in-process workers and
// assembles the returned pixels into images. Workers own disjoint pixels, and only the ingest
// loop writes to an image, so no locking is needed around the pixel buffers.
type Coordinator struct {
	captions           []string
	fractals           []*newton.Fractal
	frameCompleted     uint
	logFile            *os.File
	logger             bslogger.Logger
	mutex              sync.Mutex
	pixelCount         uint
	rectangle          gimage.Rectangle
	runPath            string
	settings           Settings
	taskGeneratedCount uint
	taskIngestedCount  uint
	tasksDone          chan task.Task
	tasksTodo          chan task.Task
	workers            []*worker.Worker
}

// NewCoordinator prepares every frame of the run and its output directory. Settings must
// already be verified.
func NewCoordinator(settings Settings) (*Coordinator, error) {
	coordinator := &Coordinator{
		logger:     bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		pixelCount: uint(settings.Viewport.Width * settings.Viewport.Height),
		rectangle:  gimage.Rect(0, 0, settings.Viewport.Width, settings.Viewport.Height),
		runPath:    filepath.Join(settings.SavePath, settings.RunName),
		settings:   settings,
		tasksDone:  make(chan task.Task, 1000),
		tasksTodo:  make(chan task.Task, 1000),
	}

	var frame uint
	for frame = 0; frame < settings.FrameCount(); frame++ {
		function, err := settings.FrameFunction(frame)
		if err != nil {
			return nil, err
		}
		fractal := newton.NewFractal(settings.NewtonSettings, settings.Viewport, function)
		coordinator.fractals = append(coordinator.fractals, &fractal)
		coordinator.captions = append(coordinator.captions, function.Name)
	}

	// Create directory to store files for this run
	if err := misc.EnsureDir(coordinator.runPath); err != nil {
		return nil, err
	}

	// Copy the settings to the directory so the run can be duplicated in the future
	settingsBytes, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to encode settings: %w", err)
	}
	if _, err = misc.WriteFile(filepath.Join(coordinator.runPath, "settings.json"), settingsBytes); err != nil {
		return nil, err
	}

	// Create a log file to record the run
	coordinator.logFile, err = os.Create(filepath.Join(coordinator.runPath, "coordinator.log"))
	if !misc.CheckError(err, coordinator.logger, misc.Warning) {
		coordinator.logger = bslogger.NewLogger("Coordinator", bslogger.Normal, coordinator.logFile)
	}

	return coordinator, nil
}

func (c *Coordinator) RunPath() string {
	return c.runPath
}

// Fractal returns the fractal of a frame. It is the worker.FractalSource of this run.
func (c *Coordinator) Fractal(frameNumber uint) *newton.Fractal {
	return c.fractals[frameNumber]
}

// Run renders every frame and returns the paths of the saved images in frame order.
func (c *Coordinator) Run() ([]string, error) {
	defer c.Close()
	c.logger.Infof("Rendering %d frame(s) of %dx%d with %d workers", len(c.fractals), c.settings.Viewport.Width, c.settings.Viewport.Height, c.settings.WorkerCount)
	startTime := time.Now()

	stop := make(chan struct{})
	tickerWait := &sync.WaitGroup{}
	tickerWait.Add(1)
	go c.tickers(stop, c.logger, tickerWait)
	defer func() {
		// The heartbeat must be gone before Close swaps the logger and closes its file
		close(stop)
		tickerWait.Wait()
	}()

	go c.generateTasks()

	workerWait := &sync.WaitGroup{}
	for i := 0; i < c.settings.WorkerCount; i++ {
		w := worker.NewWorker(i, c.Fractal)
		c.workers = append(c.workers, w)
		workerWait.Add(1)
		go w.ProcessTasks(c.tasksTodo, c.tasksDone, workerWait)
	}
	go func() {
		workerWait.Wait()
		close(c.tasksDone)
	}()

	paths, err := c.ingestTasks()
	if err != nil {
		// Let the workers finish so their goroutines do not leak
		for range c.tasksDone {
		}
		return paths, err
	}

	c.logger.Infof("Rendered %d frame(s) in %s", len(paths), time.Since(startTime))
	return paths, nil
}

// Close releases the run log file. Run and RunDensity call it when they finish.
func (c *Coordinator) Close() {
	if c.logFile == nil {
		return
	}
	c.logger = bslogger.NewLogger("Coordinator", bslogger.Normal, nil)
	misc.CheckError(c.logFile.Close(), c.logger, misc.Warning)
	c.logFile = nil
}

func (c *Coordinator) tickers(stop <-chan struct{}, logger bslogger.Logger, wg *sync.WaitGroup) {
	defer wg.Done()
	heartBeat := time.NewTicker(heartbeatInterval)
	defer heartBeat.Stop()

	for {
		select {
		case <-stop:
			return
		case <-heartBeat.C:
			c.mutex.Lock()
			generated, ingested, completed := c.taskGeneratedCount, c.taskIngestedCount, c.frameCompleted
			c.mutex.Unlock()
			logger.Infof("Tasks [Generated: %d] [Ingested: %d] | Frames [Completed: %d] [Todo: %d]", generated, ingested, completed, uint(len(c.fractals))-completed)
		}
	}
}

func (c *Coordinator) generateTasks() {
	c.logger.Debug("Generating tasks")
	startTime := time.Now()

	for frame := range c.fractals {
		c.mutex.Lock()
		firstID := c.taskGeneratedCount
		c.mutex.Unlock()

		tasks := task.Split(c.settings.TaskGeneration, firstID, uint(frame), uint(c.settings.Viewport.Height), uint(c.settings.Viewport.Width))
		for _, todo := range tasks {
			c.tasksTodo <- todo
			c.mutex.Lock()
			c.taskGeneratedCount++
			c.mutex.Unlock()
		}
	}
	c.mutex.Lock()
	generated := c.taskGeneratedCount
	c.mutex.Unlock()
	c.logger.Debugf("Done generating %d tasks in %s", generated, time.Since(startTime))

	close(c.tasksTodo)
}

func (c *Coordinator) ingestTasks() ([]string, error) {
	c.logger.Debug("Ingesting tasks")

	images := make(map[uint]*frameImage)
	paths := make([]string, len(c.fractals))
	for taskReceived := range c.tasksDone {
		c.mutex.Lock()
		c.taskIngestedCount++
		c.mutex.Unlock()

		image, ok := images[taskReceived.FrameNumber]
		if !ok {
			image = &frameImage{
				Image:      gimage.NewRGBA(c.rectangle),
				PixelsLeft: c.pixelCount,
				Roots:      make(map[complex128]struct{}),
			}
			images[taskReceived.FrameNumber] = image
		}

		for _, result := range taskReceived.Results {
			image.Image.SetRGBA(int(result.Column), int(result.Row), result.Color)
			image.PixelsLeft--
			if result.Converged {
				image.Roots[c.roundRoot(result.Root)] = struct{}{}
			}
		}

		// All pixels have been recorded so save the image
		if image.PixelsLeft == 0 {
			path, err := c.saveFrame(taskReceived.FrameNumber, image)
			if err != nil {
				return paths, err
			}
			paths[taskReceived.FrameNumber] = path

			// Remove the image to conserve memory
			delete(images, taskReceived.FrameNumber)
			c.mutex.Lock()
			c.frameCompleted++
			c.mutex.Unlock()
		}
	}

	return paths, nil
}

// roundRoot rounds to as many decimals as the tolerance resolves, so that the many pixels
// converging to one root produce a single marker.
func (c *Coordinator) roundRoot(z complex128) complex128 {
	scale := math.Pow(10, math.Round(-math.Log10(c.settings.NewtonSettings.Tolerance)))
	return complex(math.Round(real(z)*scale)/scale, math.Round(imag(z)*scale)/scale)
}

func (c *Coordinator) saveFrame(frameNumber uint, image *frameImage) (string, error) {
	if c.settings.MarkRoots {
		viewport := c.fractals[frameNumber].Viewport()
		for root := range image.Roots {
			x, y := viewport.ToPixel(root)
			drawX(image.Image, x, y, rootMarkSize, markColor)
		}
	}
	if c.settings.Caption {
		drawCaption(image.Image, c.captions[frameNumber])
	}

	path := filepath.Join(c.runPath, fmt.Sprintf("%05d.png", frameNumber))
	if err := savePNG(path, image.Image); err != nil {
		return "", err
	}
	c.logger.Infof("Saved frame to %s", path)
	return path, nil
}

func savePNG(path string, img gimage.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create image %s: %w", path, err)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("unable to save image %s: %w", path, err)
	}
	return f.Close()
}
