// Package powerframe animates a ring of addressable lights through a fixed
// cycle of light modes.
//
// A PowerFrame is polled by its host: Update is called as often as the host
// loop allows and draws at most one animation frame each time its pacing
// timer comes due. NextMode and SelectMode restart the animation for a new
// mode at any point. A PowerFrame is not safe for concurrent use, see Host
// for a loop that owns one.
package powerframe

import (
	"github.com/juju/loggo"

	"github.com/lvoytek/xc3-powerframe/millis"
	"github.com/lvoytek/xc3-powerframe/model"
)

var logger = loggo.GetLogger("powerframe")

// PowerFrame is the animation state machine for one light ring
type PowerFrame struct {
	display Display

	// Paces frames for every mode, reconfigured on each mode selection
	timer *millis.Timer

	mode  model.Mode
	phase model.Phase

	// Next pixel to light while loading, trailing pixel of the spinner while
	// running
	cursor uint
}

// New creates a power frame that will show start once Init is called
func New(display Display, clock millis.Clock, start model.Mode) (pf *PowerFrame) {
	return &PowerFrame{
		display: display,
		timer:   millis.New(clock, SequenceWait),
		mode:    start,
		phase:   model.Frozen,
	}
}

// NewDefault creates a power frame that starts with the standard fill
func NewDefault(display Display, clock millis.Clock) (pf *PowerFrame) {
	return New(display, clock, model.StandardFill)
}

// Init powers up the display, blanks it and starts the initial mode
func (pf *PowerFrame) Init() {
	pf.display.InitializeStrip()
	pf.display.SetGlobalBrightness(DefaultBrightness)
	pf.clear()

	pf.SelectMode(pf.mode)
}

// NextMode moves to the mode following the current one in the cycle
func (pf *PowerFrame) NextMode() {
	pf.SelectMode(pf.mode.Next())
}

// SelectMode blanks the ring and starts mode from the beginning, discarding
// whatever the previous mode had drawn
func (pf *PowerFrame) SelectMode(mode model.Mode) {
	pf.mode = mode
	pf.clear()

	pf.timer.Reconfigure(SequenceWait)
	pf.cursor = 0
	pf.phase = transition(pf.mode, pf.phase, selected)
}

// Update draws the next frame of the current mode if one is due
func (pf *PowerFrame) Update() {
	prog, isPresent := programs[pf.mode]
	if !isPresent {
		return
	}

	switch pf.phase {
	case model.Loading:
		if !pf.sequenceLoad(prog.target(pf.length()), prog.color) {
			return
		}
		if prog.loaded != nil {
			prog.loaded(pf)
		}
		pf.phase = transition(pf.mode, pf.phase, loaded)
		logger.Debugf("%s loaded, now %s", pf.mode, pf.phase)

	case model.Running:
		if prog.running != nil {
			prog.running(pf)
		}
	}
}

// Mode is the current light mode
func (pf *PowerFrame) Mode() model.Mode {
	return pf.mode
}

// Phase is the progress of the current mode
func (pf *PowerFrame) Phase() model.Phase {
	return pf.phase
}

// Cursor is the current progress index, its meaning depends on the mode
// and phase
func (pf *PowerFrame) Cursor() uint {
	return pf.cursor
}

// sequenceLoad lights one more pixel toward target each time the timer is
// due. It returns true once target pixels have been lit, which is on the
// same call that lights the last one.
func (pf *PowerFrame) sequenceLoad(target int, color model.Color) (complete bool) {
	if target < 0 {
		target = 0
	}
	if pf.cursor >= uint(target) {
		return true
	}
	if !pf.timer.IsDue() {
		return false
	}

	pf.display.SetPixelColor(int(pf.cursor), color)
	pf.cursor++
	pf.display.Flush()

	return pf.cursor >= uint(target)
}

func (pf *PowerFrame) clear() {
	for i := 0; i < pf.length(); i++ {
		pf.display.SetPixelColor(i, model.Black)
	}
	pf.display.Flush()
}

func (pf *PowerFrame) length() int {
	return pf.display.PixelCount()
}
