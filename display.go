package powerframe

import (
	"github.com/lvoytek/xc3-powerframe/model"
)

// Display is the LED strip the state machine draws on.
//
// Implementations own the pixel buffer. Nothing is returned from Flush,
// transmission failures are the display's own concern and must not block
// the caller for long.
type Display interface {
	// InitializeStrip powers up the strip, it is called once before any
	// other method
	InitializeStrip()

	// SetGlobalBrightness sets the brightness applied to every pixel when
	// it is shown
	SetGlobalBrightness(level uint8)

	// SetPixelColor changes one pixel in the buffer, index is in [0, PixelCount())
	SetPixelColor(index int, color model.Color)

	// Flush sends the buffer to the lights
	Flush()

	// PixelCount is the number of pixels on the strip
	PixelCount() int
}
