package coordinator

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"NewtonFractal/functions"
	"NewtonFractal/misc"
	"NewtonFractal/newton"
	"NewtonFractal/task"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	Caption        bool
	Density        densitySettings
	Function       string
	MarkRoots      bool
	NewtonSettings newton.Settings
	RunName        string
	SavePath       string
	TaskGeneration task.Generation
	Transition     *transitionSettings
	Viewport       newton.Viewport
	WorkerCount    int
}

// NewSettings reads settingsFile as JSON and fills in defaults for anything left out.
func NewSettings(settingsFile string) (Settings, error) {
	s := Settings{
		logger: bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil),
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	// Smooth coloring is on unless the file turns it off
	s.NewtonSettings.SmoothColoring = true
	if err = json.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to parse %s: %w", settingsFile, err)
	}
	if err = s.Verify(); err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

// DefaultSettings renders the cube roots of unity with every value at its default.
func DefaultSettings() (Settings, error) {
	s := Settings{}
	s.NewtonSettings.SmoothColoring = true
	return s, s.Verify()
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Function: %s\n", s.Function)
	output += fmt.Sprintf("Newton: %s\n", s.NewtonSettings.String())
	output += fmt.Sprintf("Viewport: %s\n", s.Viewport.String())
	output += fmt.Sprintf("Task Generation: %s\n", s.TaskGeneration)
	output += fmt.Sprintf("Workers: %d\n", s.WorkerCount)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil)

	if err := s.NewtonSettings.Verify(); err != nil {
		return err
	}
	s.Viewport.Verify()

	if s.Transition != nil {
		if err := s.Transition.Verify(); err != nil {
			return err
		}
		if _, err := functions.LookupFamily(s.Transition.Family); err != nil {
			return err
		}
	} else {
		if s.Function == "" {
			s.Function = "cubic"
		}
		if _, err := functions.Lookup(s.Function); err != nil {
			return err
		}
	}

	s.Density.Verify()
	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}
	if s.TaskGeneration < task.Row || s.TaskGeneration > task.Image {
		s.logger.Warningf("Unknown task generation %d, using %s", s.TaskGeneration, task.Row)
		s.TaskGeneration = task.Row
	}
	if s.WorkerCount < 1 {
		s.WorkerCount = runtime.NumCPU()
	}

	return nil
}

// FrameCount is the number of images the run produces.
func (s *Settings) FrameCount() uint {
	if s.Transition == nil {
		return 1
	}
	return s.Transition.FrameCount
}

// FrameFunction returns the function frame is rendered with.
func (s *Settings) FrameFunction(frame uint) (newton.Function, error) {
	if s.Transition == nil {
		return functions.Lookup(s.Function)
	}
	family, err := functions.LookupFamily(s.Transition.Family)
	if err != nil {
		return newton.Function{}, err
	}
	return family(s.Transition.Parameter(frame)), nil
}
