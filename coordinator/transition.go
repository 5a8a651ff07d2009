package coordinator

import (
	"fmt"

	"NewtonFractal/misc"
)

const (
	Linear Easing = iota
	EaseIn
	EaseOut
)

type Easing int

func (e Easing) String() string {
	switch e {
	case Linear:
		return "Linear"
	case EaseIn:
		return "EaseIn"
	case EaseOut:
		return "EaseOut"
	}
	return fmt.Sprintf("Easing(%d)", int(e))
}

// transitionSettings animate the parameter of a function family. Frame i of FrameCount is
// rendered with the parameter at i/FrameCount of the way from start to end.
type transitionSettings struct {
	Easing     Easing
	EndImag    float64
	EndReal    float64
	Family     string
	FrameCount uint
	StartImag  float64
	StartReal  float64
}

func (ts *transitionSettings) Verify() error {
	if ts.Family == "" {
		return fmt.Errorf("transition needs a function family")
	}
	if ts.FrameCount == 0 {
		ts.FrameCount = 1
	}
	if ts.Easing < Linear || ts.Easing > EaseOut {
		ts.Easing = Linear
	}
	return nil
}

// Parameter returns the family parameter for a frame.
func (ts *transitionSettings) Parameter(frame uint) complex128 {
	t := float64(frame) / float64(ts.FrameCount)
	switch ts.Easing {
	case EaseIn:
		t = misc.EaseInExpo(t)
	case EaseOut:
		t = misc.EaseOutExpo(t)
	}
	return misc.LerpComplex(complex(ts.StartReal, ts.StartImag), complex(ts.EndReal, ts.EndImag), t)
}
