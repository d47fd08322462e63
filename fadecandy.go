package powerframe

// This file contains a Display that shows the ring on LEDs attached to one
// or more fadecandy boards. Frames are sent to an fcserver using Open Pixel
// Control, frames identical to the last one sent are skipped, and a lost
// server connection is redialed by a later flush.

import (
	"fmt"
	"time"

	"github.com/go-stack/stack"
	"github.com/juju/errors"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/lvoytek/xc3-powerframe/millis"
	"github.com/lvoytek/xc3-powerframe/model"
)

const (
	// Minimum milliseconds between attempts to reach the fcserver
	redialWait = 2000

	// Bound on dialing and on writing a single frame
	opcTimeout = 100 * time.Millisecond
)

// DisplayError is reported when a display could not show a frame
type DisplayError struct {
	Server string
	Stack  stack.CallStack
	err    error
}

func (err *DisplayError) Error() string {
	return fmt.Sprintf("display %s: %s", err.Server, err.err.Error())
}

// Unwrap returns the transport error
func (err *DisplayError) Unwrap() error {
	return err.err
}

// opcFrame is what is compared between flushes to detect unchanged frames
type opcFrame struct {
	Channel uint8
	Pixels  []model.Color
}

// FadeCandy is a Display backed by an fcserver
type FadeCandy struct {
	*Strip

	server  string
	channel uint8
	errorC  chan<- error

	dial   func() (opcSender, error)
	client opcSender
	redial *millis.Timer

	last    uint64
	hasLast bool
}

// NewFadeCandy creates a display of length pixels that sends to the
// fcserver listening at server (host:port) on the given OPC channel.
// Transport failures are sent to errorC when it has room, otherwise they
// are logged.
func NewFadeCandy(server string, channel uint8, length int, clock millis.Clock, errorC chan<- error) (fc *FadeCandy) {
	fc = &FadeCandy{
		Strip:   NewStrip(length),
		server:  server,
		channel: channel,
		errorC:  errorC,
		redial:  millis.New(clock, redialWait),
	}
	fc.dial = func() (opcSender, error) {
		client, err := dialOPC("tcp", server, opcTimeout)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return fc
}

// InitializeStrip implements Display by connecting to the fcserver
func (fc *FadeCandy) InitializeStrip() {
	fc.Strip.InitializeStrip()
	fc.connect(true)
}

// Flush implements Display, sending the frame when it differs from the
// last one the server received
func (fc *FadeCandy) Flush() {
	fc.Strip.Flush()

	frame := opcFrame{
		Channel: fc.channel,
		Pixels:  fc.Frame(),
	}
	hash, errGo := hashstructure.Hash(frame, hashstructure.FormatV2, nil)
	if errGo == nil && fc.hasLast && hash == fc.last {
		return
	}

	if fc.client == nil && !fc.connect(false) {
		return
	}

	msg := newOPCMessage(fc.channel, len(frame.Pixels))
	for i, color := range frame.Pixels {
		r, g, b := color.RGB()
		msg.setPixelColor(i, r, g, b)
	}

	if err := fc.client.Send(msg.bytes()); err != nil {
		fc.report(err)
		fc.Close()
		return
	}

	fc.last = hash
	fc.hasLast = errGo == nil
}

// Close drops the server connection, a later flush will redial
func (fc *FadeCandy) Close() (err error) {
	fc.hasLast = false
	if fc.client == nil {
		return nil
	}
	err = fc.client.Close()
	fc.client = nil
	return errors.Trace(err)
}

// connect dials the server, unless an attempt was made within the last
// redialWait milliseconds and force is not set
func (fc *FadeCandy) connect(force bool) (connected bool) {
	if !force && !fc.redial.IsDue() {
		return false
	}
	fc.redial.Reset()

	client, err := fc.dial()
	if err != nil {
		fc.report(err)
		return false
	}
	logger.Infof("connected to fcserver %s channel %d", fc.server, fc.channel)
	fc.client = client
	fc.hasLast = false
	return true
}

func (fc *FadeCandy) report(errGo error) {
	err := &DisplayError{
		Server: fc.server,
		Stack:  stack.Trace().TrimRuntime(),
		err:    errGo,
	}

	// Never hold up the animation waiting on a slow error consumer
	select {
	case fc.errorC <- err:
	default:
		logger.Warningf("%s %v", err.Error(), err.Stack)
	}
}
