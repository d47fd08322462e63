package main

import (
	"bufio"
	"io"

	"github.com/lvoytek/xc3-powerframe/model"
)

// This file implements the monitors that sit beside the host loop, one
// turning lines of input into button presses and one reporting mode changes
// and display errors

func press(buttonC chan<- struct{}) {
	select {
	case buttonC <- struct{}{}:
	default:
	}
}

func runStdinButton(in io.Reader, buttonC chan<- struct{}, quitC <-chan struct{}) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-quitC:
			return
		default:
		}
		press(buttonC)
	}
	if err := scanner.Err(); err != nil {
		logger.Warningf("button input stopped: %v", err)
	}
}

func runErrorWatch(modeC <-chan model.Mode, errorC <-chan error, quitC <-chan struct{}) {
	for {
		select {
		case mode := <-modeC:
			logger.Infof("light mode %s", mode)
		case err := <-errorC:
			logger.Warningf("%v", err)
		case <-quitC:
			return
		}
	}
}
