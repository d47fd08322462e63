package model

// This module defines the light modes and animation phases shared by the
// state machine and the programs that drive it

import (
	"strings"

	"github.com/juju/errors"
)

// Mode is one selectable light program. The declaration order is the order
// in which Next cycles through them.
type Mode int

const (
	StandardFill Mode = iota
	FlameClockVariantA
	FlameClockVariantB
	SpinSequence
	Off

	modeCount
)

// Modes lists every mode in cycle order
var Modes = []Mode{StandardFill, FlameClockVariantA, FlameClockVariantB, SpinSequence, Off}

var modeNames = map[Mode]string{
	StandardFill:       "standard-fill",
	FlameClockVariantA: "flame-clock-a",
	FlameClockVariantB: "flame-clock-b",
	SpinSequence:       "spin-sequence",
	Off:                "off",
}

// Alternate names accepted by ParseMode, these are the names the light
// programs go by in the game the frame is themed on
var modeAliases = map[string]Mode{
	"standard-blue": StandardFill,
	"keves":         FlameClockVariantA,
	"agnus":         FlameClockVariantB,
	"spin":          SpinSequence,
	"lights-off":    Off,
}

// Next returns the mode that follows mode, wrapping from Off back to
// StandardFill. Unknown values restart the cycle.
func (mode Mode) Next() Mode {
	if mode < 0 || mode >= modeCount-1 {
		return StandardFill
	}
	return mode + 1
}

// Valid reports whether mode is one of the declared modes
func (mode Mode) Valid() bool {
	return mode >= 0 && mode < modeCount
}

func (mode Mode) String() string {
	if name, isPresent := modeNames[mode]; isPresent {
		return name
	}
	return "unknown"
}

// ParseMode converts a mode name, an alias, or a 1 based position in the
// cycle into a Mode
func ParseMode(name string) (mode Mode, err error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.Replace(key, "_", "-", -1)

	for mode, modeName := range modeNames {
		if modeName == key {
			return mode, nil
		}
	}
	if mode, isPresent := modeAliases[key]; isPresent {
		return mode, nil
	}
	if len(key) == 1 && key[0] >= '1' && key[0] < '1'+byte(modeCount) {
		return Modes[key[0]-'1'], nil
	}
	return StandardFill, errors.NotValidf("light mode %q", name)
}

// Phase is the progress of the current mode, independent of which mode it is
type Phase int

const (
	// Frozen means nothing changes until the mode does
	Frozen Phase = iota
	// Loading means pixels are being lit one at a time toward a target count
	Loading
	// Running is a steady state animation such as the spinner
	Running
	// Increasing and Decreasing are reserved for flame clock flicker and are
	// not entered by any transition
	Increasing
	Decreasing
)

var phaseNames = []string{"frozen", "loading", "running", "increasing", "decreasing"}

func (phase Phase) String() string {
	if phase < 0 || int(phase) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[phase]
}
