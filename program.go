package powerframe

// This file contains the light programs run for each mode and the phase
// transitions between them

import (
	"github.com/lvoytek/xc3-powerframe/model"
)

// event is something that can move a mode to a new phase
type event int

const (
	// selected is raised when a mode is chosen, before any frame is drawn
	selected event = iota
	// loaded is raised when the loading sequence lights its last pixel
	loaded
)

// transition returns the phase that mode moves to from phase when ev occurs.
// Nothing leaves Running or Frozen except a new selection. Increasing and
// Decreasing have no transitions into them.
func transition(mode model.Mode, phase model.Phase, ev event) model.Phase {
	switch ev {
	case selected:
		if mode == model.Off {
			return model.Frozen
		}
		return model.Loading
	case loaded:
		if phase != model.Loading {
			return phase
		}
		if mode == model.SpinSequence {
			return model.Running
		}
		return model.Frozen
	}
	return phase
}

// program describes how one mode draws itself
type program struct {
	// target is the number of pixels the loading sequence lights on a ring
	// of the given length
	target func(length int) int

	// color lit by the loading sequence
	color model.Color

	// loaded is run once, after the loading sequence lights its last pixel
	loaded func(pf *PowerFrame)

	// running draws the steady state animation, it is called on every update
	// and is responsible for its own pacing
	running func(pf *PowerFrame)
}

// programs has no entry for Off, which never draws anything
var programs = map[model.Mode]program{
	model.StandardFill: {
		target: fullRing,
		color:  model.StandardBlueColor,
	},
	// TODO: flicker the edge pixels and shrink the flame over time once the
	// Increasing and Decreasing phases are given a defined animation
	model.FlameClockVariantA: {
		target: FlameClockStartLength,
		color:  model.KevesFlameClock.Edge,
	},
	model.FlameClockVariantB: {
		target: FlameClockStartLength,
		color:  model.AgnusFlameClock.Edge,
	},
	model.SpinSequence: {
		target:  fullRing,
		color:   model.SpinBaseColor,
		loaded:  seedSpinner,
		running: spin,
	},
}

func fullRing(length int) int {
	return length
}

// seedSpinner draws the spinner over the first pixels of the filled ring
func seedSpinner(pf *PowerFrame) {
	length := pf.length()
	for i := 0; i < SpinnerLength && i < length; i++ {
		pf.display.SetPixelColor(i, model.SpinnerColor)
	}
	pf.cursor = 0
	pf.display.Flush()
}

// spin rotates the spinner one pixel forward. The cursor is the trailing
// pixel of the spinner, after moving it the pixel behind it returns to the
// base color and the pixel SpinnerLength-1 ahead of it becomes the new
// leading edge.
func spin(pf *PowerFrame) {
	if !pf.timer.IsDue() {
		return
	}
	length := pf.length()
	if length <= SpinnerLength {
		// The spinner covers the whole ring, there is nothing to move
		return
	}

	pf.cursor = uint(wrap(int(pf.cursor)+1, length))
	pf.display.SetPixelColor(wrap(int(pf.cursor)-1, length), model.SpinBaseColor)
	pf.display.SetPixelColor(wrap(int(pf.cursor)+SpinnerLength-1, length), model.SpinnerColor)
	pf.display.Flush()
}

// wrap reduces index into [0, length), indexes below zero count back from
// the end of the ring
func wrap(index int, length int) int {
	if length <= 0 {
		return 0
	}
	index %= length
	if index < 0 {
		index += length
	}
	return index
}
