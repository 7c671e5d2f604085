package sim

import (
	"fmt"
	"io"
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds in microseconds: 1us up to one hour.
const (
	minRecordableLatency = 1
	maxRecordableLatency = 3600 * 1000 * 1000
	sigFigs              = 3
)

// statGroup collects simple streaming statistics over send latencies,
// backed by an HDR histogram for quantile reporting. Latencies are pushed
// in milliseconds.
type statGroup struct {
	min  float64
	max  float64
	mean float64
	sum  float64

	// used for stddev calculations
	m      float64
	s      float64
	stdDev float64

	count int64

	latencyHDRHistogram *hdrhistogram.Histogram
}

func newStatGroup() *statGroup {
	return &statGroup{
		latencyHDRHistogram: hdrhistogram.New(minRecordableLatency, maxRecordableLatency, sigFigs),
	}
}

// push updates the statGroup with a new latency in milliseconds.
func (s *statGroup) push(n float64) {
	_ = s.latencyHDRHistogram.RecordValue(int64(n * 1e3))

	if s.count == 0 {
		s.min = n
		s.max = n
		s.mean = n
		s.count = 1
		s.sum = n

		s.m = n
		s.s = 0.0
		s.stdDev = 0.0
		return
	}

	if n < s.min {
		s.min = n
	}
	if n > s.max {
		s.max = n
	}

	s.sum += n

	// constant-space mean update:
	sum := s.mean*float64(s.count) + n
	s.mean = sum / float64(s.count+1)

	s.count++

	oldM := s.m
	s.m += (n - oldM) / float64(s.count)
	s.s += (n - oldM) * (n - s.m)
	s.stdDev = math.Sqrt(s.s / (float64(s.count) - 1.0))
}

// median returns the median latency in milliseconds.
func (s *statGroup) median() float64 {
	if s.count == 0 {
		return 0
	}
	return float64(s.latencyHDRHistogram.ValueAtQuantile(50.0)) / 1e3
}

// String makes a simple description of a statGroup.
func (s *statGroup) String() string {
	return fmt.Sprintf("min: %8.2fms, med: %8.2fms, mean: %8.2fms, max: %7.2fms, stddev: %8.2fms, sum: %5.1fsec, count: %d",
		s.min, s.median(), s.mean, s.max, s.stdDev, s.sum/1e3, s.count)
}

func (s *statGroup) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n", s.String())
	return err
}

// writeHDRPercentiles dumps the latency distribution in the HDR histogram
// percentile format, with values reported in milliseconds.
func (s *statGroup) writeHDRPercentiles(w io.Writer) error {
	_, err := s.latencyHDRHistogram.PercentilesPrint(w, 10, 1000.0)
	return err
}
