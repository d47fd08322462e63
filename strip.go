package powerframe

import (
	"sync"

	"github.com/lvoytek/xc3-powerframe/model"
)

// Strip is an in memory Display. It keeps the pixel buffer and brightness
// and counts writes and flushes, other displays embed it and add a way of
// showing the frame.
//
// The buffer is guarded so that a frame can be read from a goroutine other
// than the one driving the state machine.
type Strip struct {
	pixels     []model.Color
	brightness uint8

	initialized bool
	writes      int
	flushes     int

	// OnFlush, when set, is called with a brightness scaled copy of the
	// buffer every time the strip is flushed
	OnFlush func(frame []model.Color)

	sync.Mutex
}

// NewStrip creates a strip of length pixels, all off, at full brightness
func NewStrip(length int) (strip *Strip) {
	if length < 0 {
		length = 0
	}
	return &Strip{
		pixels:     make([]model.Color, length),
		brightness: 255,
	}
}

// InitializeStrip implements Display
func (strip *Strip) InitializeStrip() {
	strip.Lock()
	strip.initialized = true
	strip.Unlock()
}

// SetGlobalBrightness implements Display
func (strip *Strip) SetGlobalBrightness(level uint8) {
	strip.Lock()
	strip.brightness = level
	strip.Unlock()
}

// SetPixelColor implements Display, out of range indexes are ignored
func (strip *Strip) SetPixelColor(index int, color model.Color) {
	strip.Lock()
	defer strip.Unlock()

	if index < 0 || index >= len(strip.pixels) {
		return
	}
	strip.pixels[index] = color
	strip.writes++
}

// Flush implements Display
func (strip *Strip) Flush() {
	strip.Lock()
	strip.flushes++
	onFlush := strip.OnFlush
	strip.Unlock()

	if onFlush != nil {
		onFlush(strip.Frame())
	}
}

// PixelCount implements Display
func (strip *Strip) PixelCount() int {
	return len(strip.pixels)
}

// Pixels returns a copy of the buffer as it was written, without brightness
// applied
func (strip *Strip) Pixels() (pixels []model.Color) {
	strip.Lock()
	defer strip.Unlock()

	pixels = make([]model.Color, len(strip.pixels))
	copy(pixels, strip.pixels)
	return pixels
}

// Frame returns a copy of the buffer with the global brightness applied, as
// it would appear on the lights
func (strip *Strip) Frame() (frame []model.Color) {
	strip.Lock()
	defer strip.Unlock()

	frame = make([]model.Color, len(strip.pixels))
	for i, color := range strip.pixels {
		frame[i] = color.Scale(strip.brightness)
	}
	return frame
}

// Brightness is the current global brightness
func (strip *Strip) Brightness() uint8 {
	strip.Lock()
	defer strip.Unlock()
	return strip.brightness
}

// Initialized reports whether InitializeStrip has been called
func (strip *Strip) Initialized() bool {
	strip.Lock()
	defer strip.Unlock()
	return strip.initialized
}

// Writes is the number of pixel changes made so far
func (strip *Strip) Writes() int {
	strip.Lock()
	defer strip.Unlock()
	return strip.writes
}

// Flushes is the number of times the strip has been flushed
func (strip *Strip) Flushes() int {
	strip.Lock()
	defer strip.Unlock()
	return strip.flushes
}
