package probe

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stepReader returns a value that grows by step on every read.
type stepReader struct {
	value int64
	step  int64
}

func (r *stepReader) Read() int64 {
	return atomic.AddInt64(&r.value, r.step)
}

func TestMeasure(t *testing.T) {
	collector := NewCollectorWithReader(&stepReader{step: 1000})

	var calls int

	m, err := collector.Measure(func() error {
		calls++
		time.Sleep(time.Millisecond)
		return nil
	}, 1)
	require.NoError(t, err)

	require.Equal(t, 1, calls)
	require.Equal(t, 1, m.Iterations)
	require.GreaterOrEqual(t, m.Elapsed, time.Millisecond)
	require.Equal(t, int64(1000), m.Memory)
}

func TestMeasureError(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewCollector().Measure(func() error { return boom }, 1)
	require.ErrorIs(t, err, boom)
}

func TestPerCall(t *testing.T) {
	sample := Measurement{Elapsed: 1000 * time.Nanosecond, Memory: 500, Iterations: 10}.PerCall()

	require.Equal(t, 100*time.Nanosecond, sample.RunTime)
	require.Equal(t, int64(50), sample.Memory)

	// A zero iteration count is treated as a single invocation.
	sample = Measurement{Elapsed: time.Second, Memory: 7}.PerCall()

	require.Equal(t, time.Second, sample.RunTime)
	require.Equal(t, int64(7), sample.Memory)
}

func TestNegativeMemoryIsKept(t *testing.T) {
	collector := NewCollectorWithReader(&stepReader{value: 1 << 20, step: -4096})

	m, err := collector.Measure(func() error { return nil }, 2)
	require.NoError(t, err)

	require.Equal(t, int64(-4096), m.Memory)
	require.Equal(t, int64(-2048), m.PerCall().Memory)
}

func TestMemoryNonNegativeForAllocatingUnit(t *testing.T) {
	collector := NewCollectorWithReader(&stepReader{step: 64})

	for i := 1; i <= 1000; i *= 10 {
		m, err := collector.Measure(func() error { return nil }, i)
		require.NoError(t, err)
		require.GreaterOrEqual(t, m.PerCall().Memory, int64(0))
	}
}

func TestHeapReader(t *testing.T) {
	reader := newHeapReader()

	require.Greater(t, reader.Read(), int64(0))
}

var sink []byte

func TestSmallAllocationIsMeasured(t *testing.T) {
	collector := NewCollector()

	for i := 0; i < 200; i++ {
		m, err := collector.Measure(func() error {
			sink = make([]byte, 1024)
			return nil
		}, 1)
		require.NoError(t, err)
		require.GreaterOrEqual(t, m.Memory, int64(1024))
	}
}

func TestReclaim(t *testing.T) {
	var reclaimed int

	collector := NewCollector()
	collector.reclaim = func() { reclaimed++ }

	collector.Reclaim()
	require.Equal(t, 1, reclaimed)
}

func TestTimer(t *testing.T) {
	var timer Timer

	timer.Start()
	time.Sleep(time.Millisecond)
	timer.Stop()

	require.GreaterOrEqual(t, timer.Elapsed(), time.Millisecond)
}
