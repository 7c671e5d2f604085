package sim

import (
	"testing"
	"time"
)

func TestRunnerConfigValidate(t *testing.T) {
	cases := []struct {
		desc   string
		modify func(c *RunnerConfig)
		errMsg string
	}{
		{
			desc:   "defaults are valid",
			modify: func(c *RunnerConfig) {},
		},
		{
			desc:   "tilt pro color",
			modify: func(c *RunnerConfig) { c.Color = "pink*hd" },
		},
		{
			desc:   "plain tilt color",
			modify: func(c *RunnerConfig) { c.Color = "orange" },
		},
		{
			desc:   "missing address",
			modify: func(c *RunnerConfig) { c.IP = "" },
			errMsg: errNoAddress,
		},
		{
			desc:   "unknown color",
			modify: func(c *RunnerConfig) { c.Color = "chartreuse" },
			errMsg: "unknown Tilt color: 'chartreuse'",
		},
		{
			desc:   "zero interval",
			modify: func(c *RunnerConfig) { c.Interval = 0 },
			errMsg: errIntervalNotPositive,
		},
		{
			desc:   "negative time",
			modify: func(c *RunnerConfig) { c.Time = -5 },
			errMsg: "simulation duration must be positive",
		},
		{
			desc:   "inverted gravities",
			modify: func(c *RunnerConfig) { c.OG, c.FG = 1.010, 1.050 },
			errMsg: "original gravity 1.0100 is below final gravity 1.0500",
		},
	}

	for _, c := range cases {
		conf := DefaultRunnerConfig()
		c.modify(conf)
		err := conf.Validate()
		if c.errMsg == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", c.desc, err)
			}
		} else if err == nil {
			t.Errorf("%s: unexpected lack of error", c.desc)
		} else if got := err.Error(); got != c.errMsg {
			t.Errorf("%s: incorrect error: got\n%s\nwant\n%s", c.desc, got, c.errMsg)
		}
	}
}

func TestRunnerConfigSimulatorConfig(t *testing.T) {
	conf := DefaultRunnerConfig()
	conf.Time = 90

	sc := conf.SimulatorConfig()
	if got := sc.Duration; got != 90*time.Minute {
		t.Errorf("duration incorrect: got %v want %v", got, 90*time.Minute)
	}
	if sc.StartTemp != conf.StartTemp || sc.FinalTemp != conf.FinalTemp {
		t.Errorf("temperatures not carried over: got %v/%v want %v/%v",
			sc.StartTemp, sc.FinalTemp, conf.StartTemp, conf.FinalTemp)
	}
	if sc.OG != conf.OG || sc.FG != conf.FG {
		t.Errorf("gravities not carried over: got %v/%v want %v/%v", sc.OG, sc.FG, conf.OG, conf.FG)
	}
}
