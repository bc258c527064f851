package profiler

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/ProtonMail/stopwatch"
	"github.com/ProtonMail/stopwatch/config"
	"github.com/ProtonMail/stopwatch/profiling"
	"github.com/ProtonMail/stopwatch/scenario"
	"github.com/stretchr/testify/require"
)

func TestDurationPhaseProfiler(t *testing.T) {
	profiler := NewDurationPhaseProfiler()

	sc := scenario.New(scenario.Job{
		Name: "sleep",
		Func: scenario.Wrap(func() { time.Sleep(time.Millisecond) }),
	}, scenario.NoInput)

	cfg := config.Configuration{Warmup: 2 * time.Millisecond, Time: 5 * time.Millisecond, Parallel: 1}

	require.NoError(t, stopwatch.New(stopwatch.WithPhaseProfiler(profiler)).Measure(context.Background(), cfg, sc))

	durations := profiler.Durations()
	require.Len(t, durations[profiling.PhaseWarmup], 1)
	require.Len(t, durations[profiling.PhaseMeasurement], 1)

	// A phase lasts at least until its deadline.
	require.GreaterOrEqual(t, durations[profiling.PhaseWarmup][0], cfg.Warmup)
	require.GreaterOrEqual(t, durations[profiling.PhaseMeasurement][0], cfg.Time)

	var buf bytes.Buffer

	require.NoError(t, profiler.Print(&buf))
	require.Contains(t, buf.String(), "Phase warmup: Count:1")
	require.Contains(t, buf.String(), "Phase measurement: Count:1")
}
