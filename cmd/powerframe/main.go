package main

import (
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/juju/errors"
	"github.com/juju/loggo"

	powerframe "github.com/lvoytek/xc3-powerframe"
	"github.com/lvoytek/xc3-powerframe/config"
	"github.com/lvoytek/xc3-powerframe/millis"
	"github.com/lvoytek/xc3-powerframe/model"
	"github.com/lvoytek/xc3-powerframe/version"
)

var logger = loggo.GetLogger("powerframe.cmd")

func usage(flags *config.Flags) func() {
	return func() {
		fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]       button → ring → OPC (powerframe)      ", version.GitHash, "    ", version.BuildTime)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "powerframe animates a 45 pixel LED ring through a fadecandy board. Each press of")
		fmt.Fprintln(os.Stderr, "the button, a newline on stdin or a SIGUSR1, moves to the next light mode.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Options:")
		fmt.Fprintln(os.Stderr, "")
		flags.FlagSet().PrintDefaults()
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Environment Variables:")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "log levels are handled by the --logging option, the format is documented at https://github.com/juju/loggo")
	}
}

func main() {
	flags := config.NewFlags(path.Base(os.Args[0]))
	flags.FlagSet().Usage = usage(flags)

	if err := flags.Parse(os.Args[1:], os.Getenv); err != nil {
		os.Exit(2)
	}

	cfg, err := flags.Config()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	if err = loggo.ConfigureLoggers(cfg.LoggingSpec()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	logger.Debugf("%s built at %s, against commit id %s", os.Args[0], version.BuildTime, version.GitHash)

	if err = run(cfg); err != nil {
		logger.Errorf("%s", errors.ErrorStack(err))
		os.Exit(1)
	}
}

func run(cfg config.Config) (err error) {
	quitC := make(chan struct{})
	errorC := make(chan error, 4)

	clock := millis.NewSystemClock(0, 1)

	var display powerframe.Display
	if cfg.Server == "" {
		logger.Warningf("no fcserver address given, frames are only logged")
		strip := powerframe.NewStrip(powerframe.RingLength)
		strip.OnFlush = func(frame []model.Color) {
			logger.Tracef("%v", frame)
		}
		display = strip
	} else {
		fc := powerframe.NewFadeCandy(cfg.Server, cfg.Channel, powerframe.RingLength, clock, errorC)
		defer fc.Close()
		display = fc
	}

	host := powerframe.NewHost(powerframe.New(display, clock, cfg.Mode()), cfg.Poll)

	modeC := make(chan model.Mode, 1)
	host.ModeC = modeC

	buttonC := make(chan struct{}, 1)
	go runErrorWatch(modeC, errorC, quitC)
	go runStdinButton(os.Stdin, buttonC, quitC)

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGUSR1, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigC)

	go func() {
		for sig := range sigC {
			if sig == syscall.SIGUSR1 {
				press(buttonC)
				continue
			}
			logger.Infof("%s received, stopping", sig)
			close(quitC)
			return
		}
	}()

	host.Run(buttonC, nil, quitC)
	return nil
}
