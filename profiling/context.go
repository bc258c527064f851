package profiling

import "context"

type withProfilerType struct{}

var withProfilerKey withProfilerType

func Start(ctx context.Context, phase int) {
	if profiler, ok := ctx.Value(withProfilerKey).(PhaseProfiler); ok {
		profiler.Start(phase)
	}
}

func Stop(ctx context.Context, phase int) {
	if profiler, ok := ctx.Value(withProfilerKey).(PhaseProfiler); ok {
		profiler.Stop(phase)
	}
}

func WithProfiler(ctx context.Context, profiler PhaseProfiler) context.Context {
	return context.WithValue(ctx, withProfilerKey, profiler)
}
