package config

import (
	"strings"
	"time"

	flag "github.com/juju/gnuflag"
	"github.com/juju/errors"
)

// Flags binds the Config settings to command line flags. Any flag not given
// on the command line can also be taken from an environment variable named
// by changing dashes to underscores and using upper case, for example
// START_MODE for --start-mode.
type Flags struct {
	set *flag.FlagSet

	file     string
	server   string
	channel  uint
	mode     string
	poll     time.Duration
	logging  string
	verbose  bool
	explicit map[string]bool
}

// NewFlags registers the configuration flags on a new flag set named name
func NewFlags(name string) (flags *Flags) {
	defaults := DefaultConfig()
	flags = &Flags{
		set:      flag.NewFlagSet(name, flag.ContinueOnError),
		explicit: map[string]bool{},
	}

	flags.set.StringVar(&flags.file, "config", "", "YAML file holding default settings")
	flags.set.StringVar(&flags.server, "server", defaults.Server, "fcserver address as host:port")
	flags.set.UintVar(&flags.channel, "channel", uint(defaults.Channel), "Open Pixel Control channel of the ring, 0 for all")
	flags.set.StringVar(&flags.mode, "start-mode", defaults.StartMode, "light mode shown at power on (standard-fill, flame-clock-a, flame-clock-b, spin-sequence, off)")
	flags.set.DurationVar(&flags.poll, "poll", defaults.Poll, "interval between animation updates")
	flags.set.StringVar(&flags.logging, "logging", defaults.Logging, "logging configuration, see github.com/juju/loggo")
	flags.set.BoolVar(&flags.verbose, "v", false, "enable debug logging")
	flags.set.BoolVar(&flags.verbose, "verbose", false, "")

	return flags
}

// FlagSet exposes the flag set so that a binary can add flags of its own
// before parsing
func (flags *Flags) FlagSet() *flag.FlagSet {
	return flags.set
}

// EnvName returns the environment variable consulted for a flag
func EnvName(name string) string {
	return strings.ToUpper(strings.Replace(name, "-", "_", -1))
}

// Parse processes args, then fills any flag not given there from the
// environment using getenv
func (flags *Flags) Parse(args []string, getenv func(string) string) (err error) {
	if errGo := flags.set.Parse(true, args); errGo != nil {
		return errors.Trace(errGo)
	}

	flags.set.Visit(func(f *flag.Flag) {
		flags.explicit[f.Name] = true
	})

	if getenv == nil {
		return nil
	}

	flags.set.VisitAll(func(f *flag.Flag) {
		if err != nil || flags.explicit[f.Name] {
			return
		}
		value := getenv(EnvName(f.Name))
		if value == "" {
			return
		}
		if errGo := flags.set.Set(f.Name, value); errGo != nil {
			err = errors.Annotatef(errGo, "environment variable %s", EnvName(f.Name))
			return
		}
		flags.explicit[f.Name] = true
	})
	return err
}

// IsSet reports whether a flag was given on the command line or in the
// environment
func (flags *Flags) IsSet(name string) bool {
	return flags.explicit[name]
}

// Config loads the config file if one was named and applies every flag
// that was set on top of it, then validates the result
func (flags *Flags) Config() (cfg Config, err error) {
	cfg = DefaultConfig()
	if flags.file != "" {
		if cfg, err = LoadConfigFile(flags.file); err != nil {
			return Config{}, errors.Trace(err)
		}
	}

	if flags.IsSet("server") {
		cfg.Server = flags.server
	}
	if flags.IsSet("channel") {
		if flags.channel > 255 {
			return Config{}, errors.NotValidf("channel %d", flags.channel)
		}
		cfg.Channel = uint8(flags.channel)
	}
	if flags.IsSet("start-mode") {
		cfg.StartMode = flags.mode
	}
	if flags.IsSet("poll") {
		cfg.Poll = flags.poll
	}
	if flags.IsSet("logging") {
		cfg.Logging = flags.logging
	}
	if flags.IsSet("v") || flags.IsSet("verbose") {
		cfg.Verbose = flags.verbose
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, errors.Trace(err)
	}
	return cfg, nil
}
