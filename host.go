package powerframe

// This file contains the host control loop. It owns a PowerFrame on a
// single goroutine, polls it and applies the mode changes that arrive from
// buttons, keyboards and signals on other goroutines.

import (
	"time"

	"github.com/lvoytek/xc3-powerframe/model"
)

// DefaultPoll is how often the host loop calls Update. It is well under
// SequenceWait so frames are drawn with little jitter.
const DefaultPoll = time.Millisecond

// Host runs the control loop for a PowerFrame
type Host struct {
	frame *PowerFrame
	poll  time.Duration

	// ModeC, when set, receives the mode after every change
	ModeC chan<- model.Mode
}

// NewHost creates a loop that polls frame every poll interval, a zero
// interval uses DefaultPoll
func NewHost(frame *PowerFrame, poll time.Duration) (host *Host) {
	if poll <= 0 {
		poll = DefaultPoll
	}
	return &Host{
		frame: frame,
		poll:  poll,
	}
}

// Run initializes the power frame and then polls it until quitC is closed.
// Every value on buttonC advances to the next mode, modes received on
// selectC are selected directly. Either channel may be nil.
func (host *Host) Run(buttonC <-chan struct{}, selectC <-chan model.Mode, quitC <-chan struct{}) {
	host.frame.Init()
	logger.Infof("started in %s", host.frame.Mode())
	host.notify()

	poll := time.NewTicker(host.poll)
	defer poll.Stop()

	for {
		select {
		case <-poll.C:
			host.frame.Update()

		case <-buttonC:
			host.frame.NextMode()
			logger.Debugf("button pressed, mode %s", host.frame.Mode())
			host.notify()

		case mode := <-selectC:
			if !mode.Valid() {
				logger.Warningf("ignoring unknown mode %d", int(mode))
				continue
			}
			host.frame.SelectMode(mode)
			logger.Debugf("mode %s selected", mode)
			host.notify()

		case <-quitC:
			logger.Debugf("stopped in %s (%s)", host.frame.Mode(), host.frame.Phase())
			return
		}
	}
}

func (host *Host) notify() {
	if host.ModeC == nil {
		return
	}
	select {
	case host.ModeC <- host.frame.Mode():
	default:
	}
}
