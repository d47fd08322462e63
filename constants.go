package powerframe

// Fixed characteristics of the power frame light ring. These mirror the
// hardware and are deliberately not runtime configurable.
const (
	// RingLength is the number of pixels on the ring
	RingLength = 45

	// SequenceWait is the number of milliseconds between animation frames
	SequenceWait = 25

	// DefaultBrightness is the global brightness level out of 255
	DefaultBrightness = 20

	// SpinnerLength is the number of pixels in the rotating spinner block
	SpinnerLength = 5

	// The flame clocks load to three quarters of the ring
	flameClockLoadNumerator   = 3
	flameClockLoadDenominator = 4
)

// FlameClockStartLength is the number of pixels a flame clock lights on a
// ring of length pixels
func FlameClockStartLength(length int) int {
	return length * flameClockLoadNumerator / flameClockLoadDenominator
}
