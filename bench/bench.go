// Package bench provides an auto-calibrating micro benchmark runner. It
// determines a loop count automatically so a single sample takes long enough
// to measure reliably, repeats the sample a few times and reports the best
// run through a timer sink.
package bench

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dlshle/timeit/timer"
)

const (
	defaultRepeat        = 3
	defaultPrecision     = 3
	defaultMinSampleTime = 200 * time.Millisecond

	maxCalibrationPower = 9
)

type Runner struct {
	task          func()
	repeat        int
	precision     int
	verbose       bool
	sink          timer.Sink
	clock         clockwork.Clock
	minSampleTime time.Duration
}

type RunnerOpt func(*Runner)

// WithRepeat sets how many calibrated samples to take; the best one is
// reported.
func WithRepeat(repeat int) RunnerOpt {
	return func(r *Runner) {
		if repeat > 0 {
			r.repeat = repeat
		}
	}
}

// WithPrecision sets the number of significant digits in reported timings.
func WithPrecision(precision int) RunnerOpt {
	return func(r *Runner) {
		if precision > 0 {
			r.precision = precision
		}
	}
}

// WithVerbose toggles the per-sample calibration and raw timing reports. The
// final best-of report is always emitted.
func WithVerbose(verbose bool) RunnerOpt {
	return func(r *Runner) {
		r.verbose = verbose
	}
}

// WithSink replaces the default stdout sink.
func WithSink(sink timer.Sink) RunnerOpt {
	return func(r *Runner) {
		if sink != nil {
			r.sink = sink
		}
	}
}

// WithMinSampleTime sets the calibration floor: the loop count grows until a
// single sample takes at least this long.
func WithMinSampleTime(d time.Duration) RunnerOpt {
	return func(r *Runner) {
		if d > 0 {
			r.minSampleTime = d
		}
	}
}

// New builds a runner for the given task. Defaults: best of 3 samples,
// 3 significant digits, verbose, stdout sink, 200ms calibration floor.
func New(task func(), opts ...RunnerOpt) *Runner {
	r := &Runner{
		task:          task,
		repeat:        defaultRepeat,
		precision:     defaultPrecision,
		verbose:       true,
		sink:          func(message string) { fmt.Println(message) },
		clock:         clockwork.NewRealClock(),
		minSampleTime: defaultMinSampleTime,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run calibrates the loop count, measures the task and reports the best
// sample. It returns the per-loop duration of that sample. A panic inside
// the task is recovered and returned as an error; the runner keeps no state
// across runs.
func (r *Runner) Run() (best time.Duration, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			best = 0
			err = fmt.Errorf("benchmark task panicked: %v", recovered)
		}
	}()

	loops := r.calibrate()
	totals := make([]time.Duration, r.repeat)
	for i := range totals {
		totals[i] = r.sample(loops)
	}

	bestTotal := totals[0]
	for _, total := range totals[1:] {
		if total < bestTotal {
			bestTotal = total
		}
	}

	if r.verbose {
		raw := make([]string, len(totals))
		for i, total := range totals {
			raw[i] = r.seconds(total)
		}
		r.sink("raw times: " + strings.Join(raw, " "))
	}

	best = bestTotal / time.Duration(loops)
	r.sink(fmt.Sprintf("%d loops, best of %d: %s per loop",
		loops, r.repeat, timer.FormatDuration(best, r.precision)))
	return best, nil
}

// calibrate grows the loop count by powers of ten until a single sample
// takes at least the configured floor.
func (r *Runner) calibrate() int {
	loops := 1
	for power := 1; power <= maxCalibrationPower; power++ {
		loops *= 10
		sample := r.sample(loops)
		if r.verbose {
			r.sink(fmt.Sprintf("%d loops -> %s secs", loops, r.seconds(sample)))
		}
		if sample >= r.minSampleTime {
			break
		}
	}
	return loops
}

func (r *Runner) sample(loops int) time.Duration {
	start := r.clock.Now()
	for i := 0; i < loops; i++ {
		r.task()
	}
	return r.clock.Now().Sub(start)
}

func (r *Runner) seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', r.precision, 64)
}
