package sim

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/ChuckGl/simferm/internal/utils"
	"github.com/ChuckGl/simferm/pkg/data"
	"github.com/ChuckGl/simferm/pkg/data/serialize"
	"github.com/ChuckGl/simferm/pkg/targets/tiltsim"
)

// SampleWriter delivers one reading to the device simulator. Satisfied by
// tiltsim.HTTPWriter.
type SampleWriter interface {
	WriteReading(s *data.Sample) (int64, error)
}

// SimulationRunner drives one fermentation run: it generates the reading
// sequence, appends each reading to the progress log and delivers it to the
// device simulator at the configured cadence.
type SimulationRunner struct {
	// Writer delivers readings. If nil, an HTTP writer for the configured
	// Tilt-Sim address is used.
	Writer SampleWriter

	// LogOut overrides the progress-log destination. If nil, the configured
	// log file is created (truncating any previous run's log).
	LogOut io.Writer

	config     *RunnerConfig
	stats      *statGroup
	sendErrors uint64
}

// NewSimulationRunner returns a runner for the given config.
func NewSimulationRunner(config *RunnerConfig) *SimulationRunner {
	return &SimulationRunner{
		config: config,
		stats:  newStatGroup(),
	}
}

// Run validates the configuration and then performs the simulation until it
// completes or ctx is canceled. Cancellation takes effect between readings;
// a partially-run simulation still gets its closing log lines. Send
// failures are logged and do not stop the run.
func (r *SimulationRunner) Run(ctx context.Context) error {
	if err := r.config.Validate(); err != nil {
		return err
	}

	writer := r.Writer
	if writer == nil {
		writer = tiltsim.NewHTTPWriter(tiltsim.HTTPWriterConfig{
			Host:      r.config.IP,
			Color:     r.config.Color,
			DebugInfo: fmt.Sprintf("tilt %s @ %s", r.config.Color, r.config.IP),
		})
	}

	logOut := r.LogOut
	if logOut == nil {
		f, err := os.Create(r.config.LogFile)
		if err != nil {
			return errors.Wrap(err, "could not create progress log")
		}
		defer f.Close()
		logOut = f
	}
	buf := bufio.NewWriter(logOut)
	defer buf.Flush()

	scfg := r.config.SimulatorConfig()
	simulator := scfg.NewSimulator(r.config.Interval, r.config.MaxSamples)

	now := time.Now()
	window, err := utils.NewTimeInterval(now, now.Add(scfg.Duration))
	if err != nil {
		return err
	}
	if r.config.Debug > 0 {
		fmt.Fprintf(os.Stderr, "simulation window: %s to %s, one reading per %v\n",
			window.StartString(), window.EndString(), r.config.Interval)
	}

	ls := &serialize.LogSerializer{Color: r.config.Color}
	if err := ls.WriteStartBanner(buf, window.Start(), scfg.StartTemp, scfg.OG, scfg.FinalTemp, scfg.FG, window.Duration()); err != nil {
		return errors.Wrap(err, "could not write to progress log")
	}

	limiter := rate.NewLimiter(rate.Every(r.config.Interval), 1)
	sample := data.NewSample()
	for !simulator.Finished() {
		if err := limiter.Wait(ctx); err != nil {
			// Canceled between readings: stop generating and sending,
			// but still close out the log below.
			break
		}
		if !simulator.Next(sample) {
			break
		}
		sample.Timestamp = time.Now()

		if err := ls.Serialize(sample, buf); err != nil {
			return errors.Wrap(err, "could not write to progress log")
		}

		lat, err := writer.WriteReading(sample)
		if err != nil {
			r.sendErrors++
			log.Printf("send failed at %v: %v", sample.Elapsed, err)
			continue
		}
		r.stats.push(float64(lat) / 1e6)
	}

	if err := ls.WriteEndBanner(buf, time.Now(), scfg.StartTemp, scfg.OG, scfg.FinalTemp, scfg.FG); err != nil {
		return errors.Wrap(err, "could not write to progress log")
	}

	r.report(os.Stdout)

	if len(r.config.HDRLatenciesFile) > 0 {
		if err := r.saveHDRLatencies(r.config.HDRLatenciesFile); err != nil {
			return err
		}
	}

	return nil
}

// SendErrors returns the number of readings that failed to deliver.
func (r *SimulationRunner) SendErrors() uint64 {
	return r.sendErrors
}

func (r *SimulationRunner) report(w io.Writer) {
	fmt.Fprintf(w, "Run complete after %d readings (%d send errors):\n", r.stats.count, r.sendErrors)
	if r.stats.count > 0 {
		if err := r.stats.write(w); err != nil {
			log.Fatal(err)
		}
	}
}

func (r *SimulationRunner) saveHDRLatencies(file string) error {
	fmt.Printf("Saving High Dynamic Range (HDR) Histogram of send latencies to %s\n", file)
	var b bytes.Buffer
	bw := bufio.NewWriter(&b)
	if err := r.stats.writeHDRPercentiles(bw); err != nil {
		return errors.Wrap(err, "could not render latency histogram")
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(file, b.Bytes(), 0644), "could not save latency histogram")
}
