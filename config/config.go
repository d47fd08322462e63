// Package config holds the runtime settings of the power frame binaries.
//
// Settings come from, in increasing order of precedence, built in defaults,
// an optional YAML file, environment variables and command line flags. The
// animation itself is not configurable here, only how it is hosted.
package config

import (
	"bytes"
	"os"
	"time"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/lvoytek/xc3-powerframe/model"
)

// Config is the host configuration
type Config struct {
	// Server is the fcserver address as host:port, empty means no
	// fadecandy output
	Server string `yaml:"server"`

	// Channel is the Open Pixel Control channel the ring is wired to, 0
	// broadcasts to every channel
	Channel uint8 `yaml:"channel"`

	// StartMode is the light mode shown after power on
	StartMode string `yaml:"start_mode"`

	// Poll is the interval at which the animation is updated
	Poll time.Duration `yaml:"poll"`

	// Logging is a loggo configuration such as "<root>=INFO;powerframe=DEBUG"
	Logging string `yaml:"logging"`

	// Verbose forces debug logging for everything
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the settings used when nothing else is given
func DefaultConfig() Config {
	return Config{
		Server:    "127.0.0.1:7890",
		StartMode: model.StandardFill.String(),
		Poll:      time.Millisecond,
		Logging:   "<root>=INFO",
	}
}

// LoadConfigFile reads a YAML config file on top of the defaults. Unknown
// keys are rejected so that typos do not go unnoticed.
func LoadConfigFile(path string) (cfg Config, err error) {
	if path == "" {
		return Config{}, errors.NotValidf("empty config path")
	}
	b, errGo := os.ReadFile(path)
	if errGo != nil {
		return Config{}, errors.Annotatef(errGo, "read config file %s", path)
	}

	cfg = DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if errGo = dec.Decode(&cfg); errGo != nil {
		return Config{}, errors.Annotatef(errGo, "decode config file %s", path)
	}
	return cfg, nil
}

// Validate checks the settings can be used as they are
func (cfg *Config) Validate() (err error) {
	if _, err = model.ParseMode(cfg.StartMode); err != nil {
		return errors.Trace(err)
	}
	if cfg.Poll <= 0 {
		return errors.NotValidf("poll interval %v", cfg.Poll)
	}
	return nil
}

// Mode is the parsed start mode, StandardFill when it is not valid
func (cfg *Config) Mode() model.Mode {
	mode, err := model.ParseMode(cfg.StartMode)
	if err != nil {
		return model.StandardFill
	}
	return mode
}

// LoggingSpec is the loggo configuration to apply
func (cfg *Config) LoggingSpec() string {
	if cfg.Verbose {
		return "<root>=DEBUG"
	}
	if cfg.Logging == "" {
		return "<root>=INFO"
	}
	return cfg.Logging
}
