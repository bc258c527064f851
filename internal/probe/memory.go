package probe

import "runtime"

// MemoryReader returns the current memory usage in bytes.
type MemoryReader interface {
	Read() int64
}

// heapReader reports the cumulative bytes allocated for heap objects. The counter only grows, so the
// difference of two reads is what was allocated in between, whatever the collector freed meanwhile.
// The stats are allocated up front so that reading doesn't allocate inside the probed window.
type heapReader struct {
	stats runtime.MemStats
}

func newHeapReader() MemoryReader {
	return &heapReader{}
}

func (r *heapReader) Read() int64 {
	runtime.ReadMemStats(&r.stats)

	return int64(r.stats.TotalAlloc)
}
