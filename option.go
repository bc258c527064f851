package stopwatch

import (
	"github.com/ProtonMail/stopwatch/async"
	"github.com/ProtonMail/stopwatch/limits"
	"github.com/ProtonMail/stopwatch/observer"
	"github.com/ProtonMail/stopwatch/profiling"
	"github.com/ProtonMail/stopwatch/reporter"
)

// Option represents a type that can be used to configure the runner.
type Option interface {
	config(*runnerBuilder)
}

// WithObserver instructs the runner to notify the given observer of its progress.
func WithObserver(observer observer.Observer) Option {
	return &withObserver{
		observer: observer,
	}
}

type withObserver struct {
	observer observer.Observer
}

func (opt withObserver) config(builder *runnerBuilder) {
	builder.observer = opt.observer
}

// WithReporter instructs the runner to report failed scenarios to the given reporter.
func WithReporter(reporter reporter.Reporter) Option {
	return &withReporter{
		reporter: reporter,
	}
}

type withReporter struct {
	reporter reporter.Reporter
}

func (opt withReporter) config(builder *runnerBuilder) {
	builder.reporter = opt.reporter
}

// WithPanicHandler sets the handler told about panics raised by benchmarked code.
// Panics are always turned into errors; the handler is only notified.
func WithPanicHandler(panicHandler async.PanicHandler) Option {
	return &withPanicHandler{
		panicHandler: panicHandler,
	}
}

type withPanicHandler struct {
	panicHandler async.PanicHandler
}

func (opt withPanicHandler) config(builder *runnerBuilder) {
	builder.panicHandler = opt.panicHandler
}

// WithPhaseProfiler sets the profiler called around every warmup and measurement phase.
func WithPhaseProfiler(profiler profiling.PhaseProfiler) Option {
	return &withPhaseProfiler{
		profiler: profiler,
	}
}

type withPhaseProfiler struct {
	profiler profiling.PhaseProfiler
}

func (opt withPhaseProfiler) config(builder *runnerBuilder) {
	builder.profiler = opt.profiler
}

// WithCalibrationLimits bounds the number of invocations the calibration may fold into one sample.
func WithCalibrationLimits(limits limits.Calibration) Option {
	return &withCalibrationLimits{
		limits: limits,
	}
}

type withCalibrationLimits struct {
	limits limits.Calibration
}

func (opt withCalibrationLimits) config(builder *runnerBuilder) {
	builder.limits = opt.limits
}

// MemoryReader returns the current memory usage in bytes.
type MemoryReader interface {
	Read() int64
}

// WithMemoryReader replaces the runtime heap reader used for memory samples.
// The reader is shared by parallel workers and must be safe for concurrent use.
func WithMemoryReader(reader MemoryReader) Option {
	return &withMemoryReader{
		reader: reader,
	}
}

type withMemoryReader struct {
	reader MemoryReader
}

func (opt withMemoryReader) config(builder *runnerBuilder) {
	builder.memoryReader = opt.reader
}
