package main

// This file contains a terminal simulator for the power frame. It draws the
// ring using true color cells and takes the button from the keyboard, so
// that the light modes can be worked on without the hardware.

import (
	"fmt"
	"os"
	"path"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	powerframe "github.com/lvoytek/xc3-powerframe"
	"github.com/lvoytek/xc3-powerframe/config"
	"github.com/lvoytek/xc3-powerframe/millis"
	"github.com/lvoytek/xc3-powerframe/model"
	"github.com/lvoytek/xc3-powerframe/version"
)

var (
	logger = loggo.GetLogger("powerframe.simulator")

	scale       float64
	clockOffset uint
	mirror      bool
	logFile     string
)

func main() {
	flags := config.NewFlags(path.Base(os.Args[0]))
	set := flags.FlagSet()
	set.Float64Var(&scale, "scale", 1, "factor by which to accelerate the relative rate of the clock")
	set.UintVar(&clockOffset, "clock-offset", 0, "milliseconds already on the clock at start, use values near 4294967295 to exercise wraparound")
	set.BoolVar(&mirror, "mirror", false, "also send frames to the fcserver given by --server")
	set.StringVar(&logFile, "log-file", "simulator.log", "file receiving log output while the terminal is in use")

	if err := flags.Parse(os.Args[1:], os.Getenv); err != nil {
		os.Exit(2)
	}

	cfg, err := flags.Config()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	if err = run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, errors.ErrorStack(err))
		os.Exit(1)
	}
}

func run(cfg config.Config) (err error) {
	out, errGo := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if errGo != nil {
		return errors.Annotatef(errGo, "open log file %s", logFile)
	}
	defer out.Close()

	// The terminal belongs to the ring, logging goes to the file
	if _, errGo = loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(out, loggo.DefaultFormatter)); errGo != nil {
		return errors.Trace(errGo)
	}
	if err = loggo.ConfigureLoggers(cfg.LoggingSpec()); err != nil {
		return errors.Trace(err)
	}

	logger.Infof("%s built at %s, against commit id %s", os.Args[0], version.BuildTime, version.GitHash)

	screen, errGo := tcell.NewScreen()
	if errGo != nil {
		return errors.Trace(errGo)
	}
	if errGo = screen.Init(); errGo != nil {
		return errors.Trace(errGo)
	}
	defer screen.Fini()

	clock := millis.NewSystemClock(uint32(clockOffset), scale)
	ring := NewRing(screen, powerframe.RingLength)

	errorC := make(chan error, 4)
	var display powerframe.Display = ring
	if mirror && cfg.Server != "" {
		fc := powerframe.NewFadeCandy(cfg.Server, cfg.Channel, powerframe.RingLength, clock, errorC)
		defer fc.Close()
		display = powerframe.NewFanout(ring, fc)
	}

	host := powerframe.NewHost(powerframe.New(display, clock, cfg.Mode()), cfg.Poll)
	modeC := make(chan model.Mode, 1)
	host.ModeC = modeC

	buttonC := make(chan struct{}, 1)
	selectC := make(chan model.Mode, 1)
	quitC := make(chan struct{})
	doneC := make(chan struct{})

	go func() {
		defer close(doneC)
		host.Run(buttonC, selectC, quitC)
	}()

	go func() {
		for {
			select {
			case mode := <-modeC:
				ring.SetStatus(mode)
			case err := <-errorC:
				logger.Warningf("%v", err)
			case <-doneC:
				return
			}
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			act, mode := keyAction(ev.Key(), ev.Rune())
			switch act {
			case actQuit:
				close(quitC)
				<-doneC
				return nil
			case actButton:
				select {
				case buttonC <- struct{}{}:
				default:
				}
			case actSelect:
				selectC <- mode
			}
		case *tcell.EventResize:
			ring.Resize()
		}
	}

	close(quitC)
	<-doneC
	return nil
}
