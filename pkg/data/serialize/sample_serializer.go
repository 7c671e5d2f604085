package serialize

import (
	"fmt"
	"io"
	"time"

	"github.com/ChuckGl/simferm/pkg/data"
)

// SampleSerializer serializes a Sample for writing
type SampleSerializer interface {
	Serialize(s *data.Sample, w io.Writer) error
}

// logTimeLayout is the timestamp format of the simferm progress log; log
// scrapers depend on it.
const logTimeLayout = "2006-01-02, 15:04:05"

// logVersion is carried in the banner lines of the progress log.
const logVersion = 39

// LogSerializer writes Samples as lines of the simferm progress log.
type LogSerializer struct {
	// Color is the Tilt color the readings are emitted under.
	Color string
}

// Serialize writes a Sample to the given writer as one progress-log line.
func (ls *LogSerializer) Serialize(s *data.Sample, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: Current Temperature: %.1f °F, Current Gravity: %.4f, Tilt Color: %s\n",
		s.Timestamp.Format(logTimeLayout), s.Temperature, s.Gravity, ls.Color)
	return err
}

// WriteStartBanner writes the line that opens a progress log, recording the
// full parameter set of the run.
func (ls *LogSerializer) WriteStartBanner(w io.Writer, ts time.Time, startTemp, og, finalTemp, fg float64, runTime time.Duration) error {
	_, err := fmt.Fprintf(w, "%s, Simulation Starting. Tilt Color: %s, Starting Gravity: %.4f, Starting Temperature: %.1f °F, Run Time: %d minutes, Final Gravity: %.4f, Final Temperature: %.1f °F\n",
		ts.Format(logTimeLayout), ls.Color, og, startTemp, int(runTime.Minutes()), fg, finalTemp)
	return err
}

// WriteEndBanner writes the two closing lines of a progress log: the
// parameters the run began with and the values it ended on.
func (ls *LogSerializer) WriteEndBanner(w io.Writer, ts time.Time, startTemp, og, finalTemp, fg float64) error {
	_, err := fmt.Fprintf(w, "%s, Version %d, Simulation at Start. Starting Temperature: %.1f °F, Starting Gravity: %.4f, Tilt Color: %s\n",
		ts.Format(logTimeLayout), logVersion, startTemp, og, ls.Color)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: Version %d: Simulation Complete. Final Temperature: %.1f °F, Final Gravity: %.4f, Tilt Color: %s\n",
		ts.Format(logTimeLayout), logVersion, finalTemp, fg, ls.Color)
	return err
}
