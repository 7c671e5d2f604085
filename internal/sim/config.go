package sim

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/ChuckGl/simferm/internal/utils"
	"github.com/ChuckGl/simferm/pkg/fermentation"
)

// tiltColors are the colors a Tilt-Sim device exposes. Tilt Pro variants
// carry the "*hd" suffix, e.g. "yellow*hd".
var tiltColors = []string{
	"red",
	"green",
	"black",
	"purple",
	"orange",
	"blue",
	"yellow",
	"pink",
}

const tiltProSuffix = "*hd"

// Error messages when validating a RunnerConfig
const (
	errNoAddress           = "no Tilt-Sim address provided"
	errBadColorFmt         = "unknown Tilt color: '%s'"
	errIntervalNotPositive = "sample interval must be positive"
)

// RunnerConfig is the configuration of the simulation runner: where the
// readings go, what the fermentation looks like, and how the run is paced.
type RunnerConfig struct {
	IP    string `yaml:"ip" mapstructure:"ip"`
	Color string `yaml:"color" mapstructure:"color"`

	StartTemp float64 `yaml:"starttemp" mapstructure:"starttemp"`
	FinalTemp float64 `yaml:"finaltemp" mapstructure:"finaltemp"`
	OG        float64 `yaml:"og" mapstructure:"og"`
	FG        float64 `yaml:"fg" mapstructure:"fg"`

	// Time is the total simulation time in minutes.
	Time int `yaml:"time" mapstructure:"time"`

	// Interval is excluded from yaml marshaling so generated example
	// configs render it via the flag default ("1s") rather than as raw
	// nanoseconds; config files still set it under the "interval" key.
	Interval         time.Duration `yaml:"-" mapstructure:"interval"`
	MaxSamples       uint64        `yaml:"max-samples" mapstructure:"max-samples"`
	LogFile          string        `yaml:"log-file" mapstructure:"log-file"`
	HDRLatenciesFile string        `yaml:"hdr-latencies,omitempty" mapstructure:"hdr-latencies,omitempty"`
	Debug            int           `yaml:"debug,omitempty" mapstructure:"debug,omitempty"`
}

// DefaultRunnerConfig returns the reference fermentation profile the
// simulator ships with: an hour-long crash from 101.3 °F to 55.3 °F while
// the gravity falls from 1.0615 to 1.015, one reading per second.
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		IP:        "192.168.254.62",
		Color:     "yellow*hd",
		StartTemp: 101.3,
		FinalTemp: 55.3,
		OG:        1.0615,
		FG:        1.015,
		Time:      60,
		Interval:  time.Second,
		LogFile:   "simferm.log",
	}
}

// AddToFlagSet adds all the config options to a FlagSet, for easy use with
// CLIs. Flag defaults come from DefaultRunnerConfig.
func (c RunnerConfig) AddToFlagSet(fs *pflag.FlagSet) {
	d := DefaultRunnerConfig()

	fs.String("ip", d.IP, "IP address of the Tilt-Sim device")
	fs.String("color", d.Color, "Tilt color from the Tilt-Sim device")

	fs.Float64("starttemp", d.StartTemp, "Starting temperature (°F)")
	fs.Float64("finaltemp", d.FinalTemp, "Final temperature (°F)")
	fs.Float64("og", d.OG, "Original Gravity (OG)")
	fs.Float64("fg", d.FG, "Final Gravity (FG)")
	fs.Int("time", d.Time, "Total simulation time (minutes)")

	fs.Duration("interval", d.Interval, "Duration between readings")
	fs.Uint64("max-samples", 0, "Limit the number of readings to emit, 0 = no limit")
	fs.String("log-file", d.LogFile, "File to write the progress log to")
	fs.String("hdr-latencies", "", "Write the High Dynamic Range (HDR) Histogram of send latencies to this file")
	fs.Int("debug", 0, "Control level of debug output")
}

// Validate checks that the values of the RunnerConfig are reasonable.
func (c *RunnerConfig) Validate() error {
	if c.IP == "" {
		return fmt.Errorf(errNoAddress)
	}
	if !utils.IsIn(strings.TrimSuffix(c.Color, tiltProSuffix), tiltColors) {
		return fmt.Errorf(errBadColorFmt, c.Color)
	}
	if c.Interval <= 0 {
		return fmt.Errorf(errIntervalNotPositive)
	}
	return c.SimulatorConfig().Validate()
}

// SimulatorConfig derives the fermentation curve parameters from the
// runner's configuration.
func (c *RunnerConfig) SimulatorConfig() *fermentation.SimulatorConfig {
	return &fermentation.SimulatorConfig{
		StartTemp: c.StartTemp,
		FinalTemp: c.FinalTemp,
		OG:        c.OG,
		FG:        c.FG,
		Duration:  time.Duration(c.Time) * time.Minute,
	}
}
