// Package probe times and memory-probes a single measured unit.
package probe

import (
	"runtime"
	"time"
)

// Measurement is the raw result of measuring one unit made of Iterations logical invocations.
type Measurement struct {
	Elapsed    time.Duration
	Memory     int64
	Iterations int
}

// Sample is the cost of one logical invocation.
type Sample struct {
	RunTime time.Duration
	Memory  int64
}

// PerCall normalizes the measurement to the cost of a single invocation.
func (m Measurement) PerCall() Sample {
	iterations := m.Iterations
	if iterations < 1 {
		iterations = 1
	}

	return Sample{
		RunTime: m.Elapsed / time.Duration(iterations),
		Memory:  m.Memory / int64(iterations),
	}
}

// Collector measures units of work. It is safe for concurrent use.
//
// Memory is sampled process wide: allocations of concurrent workers show up in each other's deltas. Readers
// that report live memory rather than allocated bytes can produce negative deltas; those are reported as measured.
type Collector struct {
	newReader func() MemoryReader
	reclaim   func()
}

func NewCollector() *Collector {
	return &Collector{
		newReader: newHeapReader,
		reclaim:   runtime.GC,
	}
}

// NewCollectorWithReader returns a collector that reads memory usage from the given reader.
// The reader must be safe for concurrent use if the collector is shared by parallel workers.
func NewCollectorWithReader(reader MemoryReader) *Collector {
	return &Collector{
		newReader: func() MemoryReader { return reader },
		reclaim:   runtime.GC,
	}
}

// Reclaim forces a full garbage collection. It is called once before each phase, not before every sample.
func (c *Collector) Reclaim() {
	c.reclaim()
}

// Measure runs fn once, timing it and recording the memory delta around it.
// fn is expected to perform the given number of logical invocations.
func (c *Collector) Measure(fn func() error, iterations int) (Measurement, error) {
	var timer Timer

	memory := c.newReader()

	before := memory.Read()

	timer.Start()
	err := fn()
	timer.Stop()

	after := memory.Read()

	if err != nil {
		return Measurement{}, err
	}

	elapsed := timer.Elapsed()
	if elapsed < 0 {
		elapsed = 0
	}

	return Measurement{
		Elapsed:    elapsed,
		Memory:     after - before,
		Iterations: iterations,
	}, nil
}
