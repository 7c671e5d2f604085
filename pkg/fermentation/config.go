package fermentation

import (
	"fmt"
	"time"
)

// Error messages when validating a SimulatorConfig
const (
	ErrDurationNotPositive   = "simulation duration must be positive"
	errGravityInvertedFmt    = "original gravity %.4f is below final gravity %.4f"
	errGravityNotPositiveFmt = "gravity must be positive, got %.4f"
)

// SimulatorConfig is used to create a Simulator. Temperatures are degrees
// Fahrenheit and may rise or fall over the run; gravity always falls (or
// holds, when OG equals FG).
type SimulatorConfig struct {
	StartTemp float64
	FinalTemp float64
	OG        float64
	FG        float64
	Duration  time.Duration
}

// Validate checks that the values of the SimulatorConfig are reasonable.
func (c *SimulatorConfig) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf(ErrDurationNotPositive)
	}
	if c.OG <= 0 {
		return fmt.Errorf(errGravityNotPositiveFmt, c.OG)
	}
	if c.FG <= 0 {
		return fmt.Errorf(errGravityNotPositiveFmt, c.FG)
	}
	if c.OG < c.FG {
		return fmt.Errorf(errGravityInvertedFmt, c.OG, c.FG)
	}
	return nil
}

// NewSimulator produces a Simulator that emits one Sample per interval over
// the configured Duration, endpoints included. A Duration shorter than the
// interval resolves to a single boundary sample at the starting values. If
// limit is greater than 0, at most limit samples are emitted.
func (c *SimulatorConfig) NewSimulator(interval time.Duration, limit uint64) *Simulator {
	var steps uint64
	if interval > 0 && c.Duration > 0 {
		steps = uint64(c.Duration / interval)
	}

	maxSamples := steps + 1
	if limit > 0 && limit < maxSamples {
		maxSamples = limit
	}

	return &Simulator{
		interval:     interval,
		steps:        steps,
		maxSamples:   maxSamples,
		tempCurve:    NewDecayCurve(c.StartTemp, c.FinalTemp, TempDecayConstant),
		gravityCurve: NewDecayCurve(c.OG, c.FG, GravityDecayConstant),
	}
}
