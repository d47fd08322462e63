package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lvoytek/xc3-powerframe/model"
)

type action int

const (
	actNone action = iota
	actQuit
	actButton
	actSelect
)

// keyAction maps a key press onto what the simulator should do with it.
// Space and enter are the button, the digits 1 to 5 pick a mode directly.
func keyAction(key tcell.Key, r rune) (act action, mode model.Mode) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, model.Off
	case tcell.KeyEnter:
		return actButton, model.Off
	case tcell.KeyRune:
	default:
		return actNone, model.Off
	}

	switch {
	case r == 'q' || r == 'Q':
		return actQuit, model.Off
	case r == ' ':
		return actButton, model.Off
	case r >= '1' && r <= '9':
		if mode, err := model.ParseMode(string(r)); err == nil {
			return actSelect, mode
		}
	}
	return actNone, model.Off
}
