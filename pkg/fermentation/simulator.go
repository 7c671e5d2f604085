package fermentation

import (
	"time"

	"github.com/ChuckGl/simferm/pkg/data"
)

// A Simulator generates the reading sequence for one fermentation run:
// temperature chasing the final setpoint and gravity decaying toward FG.
// Every sample is a pure function of its step index, so two Simulators
// built from the same config emit identical sequences.
type Simulator struct {
	interval time.Duration

	// steps is the number of intervals between the first and last sample;
	// the run emits steps+1 samples so both endpoints are included.
	steps       uint64
	madeSamples uint64
	maxSamples  uint64

	tempCurve    Curve
	gravityCurve Curve
}

// Finished reports whether every sample of the run has been generated.
func (s *Simulator) Finished() bool {
	return s.madeSamples >= s.maxSamples
}

// Next advances sample to the next reading in the run. It returns false
// once the run is complete, leaving sample untouched.
func (s *Simulator) Next(sample *data.Sample) bool {
	if s.Finished() {
		return false
	}
	s.SampleAt(s.madeSamples, sample)
	s.madeSamples++
	return true
}

// SampleAt computes the reading at step i without advancing the Simulator.
func (s *Simulator) SampleAt(i uint64, sample *data.Sample) {
	f := s.fraction(i)
	sample.Elapsed = time.Duration(i) * s.interval
	sample.Temperature = s.tempCurve.At(f)
	sample.Gravity = s.gravityCurve.At(f)
}

func (s *Simulator) fraction(i uint64) float64 {
	if s.steps == 0 {
		return 0
	}
	return float64(i) / float64(s.steps)
}
