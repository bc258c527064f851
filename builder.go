package stopwatch

import (
	"github.com/ProtonMail/stopwatch/async"
	"github.com/ProtonMail/stopwatch/internal/probe"
	"github.com/ProtonMail/stopwatch/limits"
	"github.com/ProtonMail/stopwatch/observer"
	"github.com/ProtonMail/stopwatch/profiling"
	"github.com/ProtonMail/stopwatch/reporter"
)

type runnerBuilder struct {
	observer     observer.Observer
	reporter     reporter.Reporter
	panicHandler async.PanicHandler
	profiler     profiling.PhaseProfiler
	limits       limits.Calibration
	memoryReader MemoryReader
}

func newBuilder() *runnerBuilder {
	return &runnerBuilder{
		observer:     observer.Null{},
		reporter:     &reporter.NullReporter{},
		panicHandler: async.NoopPanicHandler{},
		profiler:     &profiling.NullPhaseProfiler{},
		limits:       limits.DefaultLimits(),
	}
}

func (builder *runnerBuilder) build() *Runner {
	collector := probe.NewCollector()
	if builder.memoryReader != nil {
		collector = probe.NewCollectorWithReader(builder.memoryReader)
	}

	return &Runner{
		observer:     builder.observer,
		reporter:     builder.reporter,
		panicHandler: builder.panicHandler,
		profiler:     builder.profiler,
		limits:       builder.limits,
		collector:    collector,
	}
}
