// Package profiler records how long the phases of each scenario really took.
package profiler

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ProtonMail/stopwatch/profiling"
)

// DurationPhaseProfiler records the wall time of every phase, hooks included. Compared with the configured
// phase durations this shows how far the sampler overran its deadline.
type DurationPhaseProfiler struct {
	mutex     sync.Mutex
	durations [profiling.PhaseTotal][]time.Duration
	start     [profiling.PhaseTotal]time.Time
}

func NewDurationPhaseProfiler() *DurationPhaseProfiler {
	profiler := &DurationPhaseProfiler{}
	for i := 0; i < len(profiler.durations); i++ {
		profiler.durations[i] = make([]time.Duration, 0, 128)
	}

	return profiler
}

func (p *DurationPhaseProfiler) Start(phase int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.start[phase] = time.Now()
}

func (p *DurationPhaseProfiler) Stop(phase int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.durations[phase] = append(p.durations[phase], time.Since(p.start[phase]))
}

// Durations returns a copy of the durations recorded for each phase.
func (p *DurationPhaseProfiler) Durations() [profiling.PhaseTotal][]time.Duration {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var result [profiling.PhaseTotal][]time.Duration

	for i := 0; i < len(result); i++ {
		result[i] = append(result[i], p.durations[i]...)
	}

	return result
}

// Print writes the total and slowest duration of each phase.
func (p *DurationPhaseProfiler) Print(out io.Writer) error {
	for phase, durations := range p.Durations() {
		if len(durations) == 0 {
			continue
		}

		var total, slowest time.Duration

		for _, d := range durations {
			total += d

			if d > slowest {
				slowest = d
			}
		}

		if _, err := fmt.Fprintf(out, "Phase %v: Count:%v Total:%v Slowest:%v\n",
			profiling.PhaseToString(phase), len(durations), total, slowest,
		); err != nil {
			return err
		}
	}

	return nil
}
