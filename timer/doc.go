// Package timer provides a scoped wall-clock timer: it measures the duration
// of a block of code and reports it through a pluggable sink once the scope
// ends, on normal and panicking exit paths alike.
//
// Example usage:
//
//	// Time a block with a deferred stop
//	t := timer.New(timer.WithLabel("my calc")).Start()
//	defer t.Stop()
//	// whatever ...
//
//	// Or wrap a task directly; the report is emitted even if the task
//	// fails or panics
//	err := timer.Time(func() error {
//		return doWork()
//	}, timer.WithLabel("work"))
//
//	// Route reports into a logger instead of stdout
//	timer.Time(task, timer.WithSink(logging.Sink(l, logging.DEBUG)))
package timer
