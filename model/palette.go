package model

// FlameClockPalette is the pair of colors a flame clock is drawn with. Only
// the edge color is lit by the loading sequence, the base color is the tone
// the flicker would fade toward.
type FlameClockPalette struct {
	Base Color
	Edge Color
}

const (
	// StandardBlueColor is the solid fill of the standard power frame
	StandardBlueColor Color = 0x18EFFF
)

var (
	// KevesFlameClock is the palette of the first flame clock variant
	KevesFlameClock = FlameClockPalette{Base: 0xE1FDF9, Edge: 0x57E0FD}

	// AgnusFlameClock is the palette of the second flame clock variant
	AgnusFlameClock = FlameClockPalette{Base: 0xFEFEE0, Edge: 0x93ED2F}

	// SpinBaseColor fills the ring underneath the spinner
	SpinBaseColor = StandardBlueColor

	// SpinnerColor is the lighter block that rotates around the ring, it is
	// derived from the base color so the two always read as the same hue
	SpinnerColor Color
)

func init() {
	// Blend two thirds of the way from the standard blue toward white
	SpinnerColor = SpinBaseColor.Blend(0xFFFFFF, 0.66)
}
