package utils

import (
	"fmt"
	"time"
)

// ErrEndBeforeStart is the error message for when a TimeInterval's end time
// would be before its start.
const ErrEndBeforeStart = "end time before start time"

// TimeInterval represents an interval of time in UTC. That is, regardless of
// what timezone(s) are used for the beginning and end times, they will be
// converted to UTC and methods will return them as such.
type TimeInterval struct {
	start time.Time
	end   time.Time
}

// NewTimeInterval creates a new TimeInterval for a given start and end. If end
// is a time.Time before start, then an error is returned.
func NewTimeInterval(start, end time.Time) (*TimeInterval, error) {
	if end.Before(start) {
		return nil, fmt.Errorf(ErrEndBeforeStart)
	}
	return &TimeInterval{start.UTC(), end.UTC()}, nil
}

// Duration returns the time.Duration of the TimeInterval.
func (ti *TimeInterval) Duration() time.Duration {
	return ti.end.Sub(ti.start)
}

// Start returns the starting time in UTC.
func (ti *TimeInterval) Start() time.Time {
	return ti.start
}

// StartString formats the start of the TimeInterval according to RFC3339.
func (ti *TimeInterval) StartString() string {
	return ti.start.Format(time.RFC3339)
}

// End returns the end time in UTC.
func (ti *TimeInterval) End() time.Time {
	return ti.end
}

// EndString formats the end of the TimeInterval according to RFC3339.
func (ti *TimeInterval) EndString() string {
	return ti.end.Format(time.RFC3339)
}
