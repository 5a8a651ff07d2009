package worker

import (
	"fmt"
	"sync"
	"time"

	"NewtonFractal/newton"
	"NewtonFractal/task"

	"github.com/BrugadaSyndrome/bslogger"
)

// FractalSource returns the fractal a frame is rendered with. It is called concurrently and
// must not mutate what it returns.
type FractalSource func(frameNumber uint) *newton.Fractal

type Worker struct {
	fractals       FractalSource
	logger         bslogger.Logger
	name           string
	tasksCompleted int
}

func NewWorker(id int, fractals FractalSource) *Worker {
	name := fmt.Sprintf("Worker %d", id)
	return &Worker{
		fractals: fractals,
		logger:   bslogger.NewLogger(name, bslogger.Normal, nil),
		name:     name,
	}
}

func (w *Worker) TasksCompleted() int {
	return w.tasksCompleted
}

// ProcessTasks computes every pixel of each task received on tasksTodo and hands the task
// back on tasksDone. It returns once tasksTodo is closed and drained.
func (w *Worker) ProcessTasks(tasksTodo <-chan task.Task, tasksDone chan<- task.Task, wg *sync.WaitGroup) {
	defer wg.Done()
	w.logger.Debug("Processing tasks")

	startTime := time.Now()
	for taskTodo := range tasksTodo {
		taskTodo.WorkerName = w.name
		w.Process(&taskTodo)
		tasksDone <- taskTodo
		w.tasksCompleted++
	}

	w.logger.Debugf("Processed %d tasks in %s", w.tasksCompleted, time.Since(startTime))
}

// Process fills in the results of a single task.
func (w *Worker) Process(taskTodo *task.Task) {
	fractal := w.fractals(taskTodo.FrameNumber)
	for {
		coordinate, err := taskTodo.GetNextTask()
		if err != nil {
			break
		}
		taskTodo.AddResult(fractal.Pixel(coordinate))
	}
}
