package task

import (
	"errors"
	"fmt"
)

const (
	Row Generation = iota
	Column
	Image
)

type Generation int

func (g Generation) String() string {
	switch g {
	case Row:
		return "Row"
	case Column:
		return "Column"
	case Image:
		return "Image"
	}
	return fmt.Sprintf("Generation(%d)", int(g))
}

var ErrNoMoreTasks = errors.New("no more tasks")

// Task is a batch of pixels of one frame handed to a worker as a unit.
type Task struct {
	CurrentTask uint
	FrameNumber uint
	ID          uint
	Results     []Pixel
	Tasks       []Coordinate
	WorkerName  string
}

func NewTask(id uint, frameNumber uint) Task {
	return Task{
		ID:          id,
		FrameNumber: frameNumber,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Frame Number: %d ", t.FrameNumber)
	output += fmt.Sprintf("Result Count: %d ", len(t.Results))
	output += fmt.Sprintf("Task Count: %d}", len(t.Tasks))
	return output
}

func (t *Task) AddTaskForPixel(coordinate Coordinate) {
	t.Tasks = append(t.Tasks, coordinate)
}

func (t *Task) AddTasksForRow(imageRow uint, imageWidth uint) {
	var c uint
	for c = 0; c < imageWidth; c++ {
		t.AddTaskForPixel(Coordinate{Column: c, Row: imageRow})
	}
}

func (t *Task) AddTasksForColumn(imageHeight uint, imageColumn uint) {
	var r uint
	for r = 0; r < imageHeight; r++ {
		t.AddTaskForPixel(Coordinate{Column: imageColumn, Row: r})
	}
}

func (t *Task) AddTasksForImage(imageHeight uint, imageWidth uint) {
	var r, c uint
	for r = 0; r < imageHeight; r++ {
		for c = 0; c < imageWidth; c++ {
			t.AddTaskForPixel(Coordinate{Column: c, Row: r})
		}
	}
}

// Split breaks a frame into tasks following the generation strategy. IDs are assigned from
// firstID upwards.
func Split(generation Generation, firstID uint, frameNumber uint, imageHeight uint, imageWidth uint) []Task {
	var tasks []Task
	id := firstID
	switch generation {
	case Column:
		var column uint
		for column = 0; column < imageWidth; column++ {
			todo := NewTask(id, frameNumber)
			todo.AddTasksForColumn(imageHeight, column)
			tasks = append(tasks, todo)
			id++
		}
	case Image:
		todo := NewTask(id, frameNumber)
		todo.AddTasksForImage(imageHeight, imageWidth)
		tasks = append(tasks, todo)
	default:
		var row uint
		for row = 0; row < imageHeight; row++ {
			todo := NewTask(id, frameNumber)
			todo.AddTasksForRow(row, imageWidth)
			tasks = append(tasks, todo)
			id++
		}
	}
	return tasks
}

// GetNextTask
// Returns the current task to be processed. Make sure to return the result to the AddResult method before calling
// this method again
func (t *Task) GetNextTask() (Coordinate, error) {
	if len(t.Results) >= len(t.Tasks) {
		return Coordinate{}, ErrNoMoreTasks
	}
	return t.Tasks[t.CurrentTask], nil
}

// AddResult
// When returning a result the CurrentTask value is incremented so the next call to the GetNextTask method will return
// the correct task
func (t *Task) AddResult(pixel Pixel) {
	t.Results = append(t.Results, pixel)
	t.CurrentTask++
}
