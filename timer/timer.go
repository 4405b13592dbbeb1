package timer

import (
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
)

const defaultPrecision = 3

// Sink receives a single formatted report message and performs a side effect
// with it (print it, log it, hand it to a metrics pipeline).
type Sink func(message string)

func stdoutSink(message string) {
	fmt.Fprintln(os.Stdout, message)
}

// Clock is the subset of clockwork.Clock the timer needs, kept narrow so
// tests can substitute stub clocks without implementing the full interface.
type Clock interface {
	Now() time.Time
}

// Timer measures the wall-clock duration between Start and Stop and reports
// it through its sink. Each instance is single use and owned by one scope;
// calling Start twice is not guarded.
type Timer struct {
	label     string
	sink      Sink
	precision int
	clock     Clock
	start     time.Time
	elapsed   time.Duration
}

type TimerOpt func(*Timer)

// WithLabel names the measured operation in the report message.
func WithLabel(label string) TimerOpt {
	return func(t *Timer) {
		t.label = label
	}
}

// WithSink replaces the default stdout sink.
func WithSink(sink Sink) TimerOpt {
	return func(t *Timer) {
		if sink != nil {
			t.sink = sink
		}
	}
}

// WithPrecision sets the number of significant digits in the reported timing.
func WithPrecision(precision int) TimerOpt {
	return func(t *Timer) {
		if precision > 0 {
			t.precision = precision
		}
	}
}

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(clock Clock) TimerOpt {
	return func(t *Timer) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// New builds a timer. Defaults: no label, stdout sink, 3 significant digits,
// real clock.
func New(opts ...TimerOpt) *Timer {
	t := &Timer{
		sink:      stdoutSink,
		precision: defaultPrecision,
		clock:     clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start captures the start timestamp. It returns the receiver so the common
// pattern reads as a single line:
//
//	t := timer.New(timer.WithLabel("my calc")).Start()
//	defer t.Stop()
func (t *Timer) Start() *Timer {
	t.start = t.clock.Now()
	return t
}

// Stop captures the end timestamp, computes the elapsed duration and hands
// the formatted report to the sink. Stop never recovers a panic from the
// measured block, and a failing sink propagates to the caller untouched.
func (t *Timer) Stop() {
	t.elapsed = t.clock.Now().Sub(t.start)
	if t.elapsed < 0 {
		t.elapsed = 0
	}
	t.sink(t.message())
}

// Elapsed returns the measured duration. It is zero until Stop has run.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *Timer) message() string {
	timing := FormatDuration(t.elapsed, t.precision)
	if t.label == "" {
		return "Executed in: " + timing
	}
	return "Executed '" + t.label + "' in: " + timing
}

// Time runs the task inside a started timer. The report is emitted exactly
// once before the caller resumes, on normal return, error return and panic
// alike; the task's error (or panic) reaches the caller unchanged.
func Time(task func() error, opts ...TimerOpt) error {
	t := New(opts...).Start()
	defer t.Stop()
	return task()
}

// Time1 is Time for tasks that produce a value.
func Time1[T any](task func() (T, error), opts ...TimerOpt) (res T, err error) {
	err = Time(func() error {
		res, err = task()
		return err
	}, opts...)
	return
}
