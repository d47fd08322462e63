package model

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24 bit RGB value packed as 0xRRGGBB
type Color uint32

// Black is the color of an unlit pixel
const Black Color = 0x000000

// RGBColor packs three 8 bit channels
func RGBColor(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ColorFromHex parses a "#RRGGBB" string
func ColorFromHex(hex string) (color Color, err error) {
	c, errGo := colorful.Hex(hex)
	if errGo != nil {
		return Black, errors.Annotatef(errGo, "color %q", hex)
	}
	return FromColorful(c), nil
}

// FromColorful converts a colorful.Color, clamping it into the RGB gamut
func FromColorful(c colorful.Color) Color {
	return RGBColor(c.Clamped().RGB255())
}

// RGB unpacks the individual channels
func (color Color) RGB() (r, g, b uint8) {
	return uint8(color >> 16), uint8(color >> 8), uint8(color)
}

// Colorful converts to a colorful.Color for blending
func (color Color) Colorful() colorful.Color {
	r, g, b := color.RGB()
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// Blend mixes toward other in the Lab color space, t of 0 is color and 1 is
// other
func (color Color) Blend(other Color, t float64) Color {
	return FromColorful(color.Colorful().BlendLab(other.Colorful(), t))
}

// Scale applies a global brightness level the same way NeoPixel drivers do,
// each channel is multiplied by level+1 and divided by 256. A level of 255
// leaves the color untouched.
func (color Color) Scale(level uint8) Color {
	if level == 255 {
		return color
	}
	scale := uint32(level) + 1
	r, g, b := color.RGB()
	return RGBColor(uint8(uint32(r)*scale>>8), uint8(uint32(g)*scale>>8), uint8(uint32(b)*scale>>8))
}

func (color Color) String() string {
	return fmt.Sprintf("#%06X", uint32(color)&0xFFFFFF)
}
