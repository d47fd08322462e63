package powerframe

// This file contains a Display that relays every call it receives to a set
// of other displays, for example a fadecandy ring and a terminal preview
// showing the same animation

import (
	"github.com/lvoytek/xc3-powerframe/model"
)

// Fanout is a Display that broadcasts to all of its members in order
type Fanout []Display

// NewFanout groups displays, nil entries are dropped
func NewFanout(displays ...Display) (fanout Fanout) {
	fanout = make(Fanout, 0, len(displays))
	for _, display := range displays {
		if display != nil {
			fanout = append(fanout, display)
		}
	}
	return fanout
}

// InitializeStrip implements Display
func (fanout Fanout) InitializeStrip() {
	for _, display := range fanout {
		display.InitializeStrip()
	}
}

// SetGlobalBrightness implements Display
func (fanout Fanout) SetGlobalBrightness(level uint8) {
	for _, display := range fanout {
		display.SetGlobalBrightness(level)
	}
}

// SetPixelColor implements Display
func (fanout Fanout) SetPixelColor(index int, color model.Color) {
	for _, display := range fanout {
		display.SetPixelColor(index, color)
	}
}

// Flush implements Display
func (fanout Fanout) Flush() {
	for _, display := range fanout {
		display.Flush()
	}
}

// PixelCount implements Display. It is the shortest member's length so that
// every index the state machine uses is valid on every member.
func (fanout Fanout) PixelCount() (count int) {
	for i, display := range fanout {
		if n := display.PixelCount(); i == 0 || n < count {
			count = n
		}
	}
	return count
}
