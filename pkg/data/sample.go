package data

import "time"

// Sample wraps a single simulated reading. It stores what a Tilt hydrometer
// reports at one point in a fermentation: the temperature and the specific
// gravity, along with when in the run the reading was made.
type Sample struct {
	// Elapsed is the offset of this reading from the start of the run.
	Elapsed time.Duration

	// Timestamp is the wall-clock time the reading was emitted.
	Timestamp time.Time

	// Temperature is in degrees Fahrenheit.
	Temperature float64

	// Gravity is the specific gravity, e.g. 1.0615.
	Gravity float64
}

// NewSample returns a new empty Sample.
func NewSample() *Sample {
	return &Sample{}
}

// Reset clears all information from this Sample so it can be reused.
func (s *Sample) Reset() {
	s.Elapsed = 0
	s.Timestamp = time.Time{}
	s.Temperature = 0
	s.Gravity = 0
}
