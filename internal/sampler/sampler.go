// Package sampler runs rounds of parallel measurements of a calibrated scenario until a deadline passes.
package sampler

import (
	"context"
	"time"

	"github.com/ProtonMail/stopwatch/async"
	"github.com/ProtonMail/stopwatch/internal/batch"
	"github.com/ProtonMail/stopwatch/internal/probe"
	"github.com/ProtonMail/stopwatch/logging"
	"github.com/bradenaw/juniper/parallel"
	"github.com/bradenaw/juniper/xslices"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Result holds the samples of one phase.
type Result struct {
	// RunTimes is sorted ascending.
	RunTimes []time.Duration

	// Memory is in round completion order, workers in index order within a round. It is not sorted, so
	// Memory[i] is in general not the sample RunTimes[i] was taken from.
	Memory []int64

	// Input is the last input produced by the before-each hooks: the one of the last worker of the last round.
	Input any

	// Rounds is the number of rounds that were run.
	Rounds int
}

// Seed is a measurement taken before sampling started, such as the calibration measurement.
type Seed struct {
	Sample probe.Sample
	Input  any
}

// Sampler runs the rounds. Workers only share the immutable executor and the collector.
type Sampler struct {
	parallel     int
	collector    *probe.Collector
	panicHandler async.PanicHandler
	labels       map[string]any
	now          func() time.Time
}

func New(parallelism int, collector *probe.Collector, panicHandler async.PanicHandler) *Sampler {
	if parallelism < 1 {
		parallelism = 1
	}

	return &Sampler{
		parallel:     parallelism,
		collector:    collector,
		panicHandler: panicHandler,
		now:          time.Now,
	}
}

// WithLabels sets the pprof labels attached to the worker goroutines.
func (s *Sampler) WithLabels(job, input, phase string) *Sampler {
	s.labels = logging.ScenarioLabels(job, input, phase, 0)
	return s
}

// Run starts a new round as long as the deadline hasn't passed. A round always runs to completion, so the phase
// can overrun the deadline by up to one round. The seeds are included in the result.
func (s *Sampler) Run(ctx context.Context, exec *batch.Executor, deadline time.Time, seeds ...Seed) (*Result, error) {
	rounds := [][]probe.Sample{
		xslices.Map(seeds, func(seed Seed) probe.Sample { return seed.Sample }),
	}

	res := &Result{}

	if len(seeds) > 0 {
		res.Input = seeds[len(seeds)-1].Input
	}

	for !s.now().After(deadline) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		samples, inputs, err := s.round(ctx, exec)
		if err != nil {
			return nil, err
		}

		rounds = append(rounds, samples)
		res.Input = inputs[len(inputs)-1]
		res.Rounds++
	}

	all := xslices.Join(rounds...)

	res.RunTimes = xslices.Map(all, func(sample probe.Sample) time.Duration { return sample.RunTime })
	res.Memory = xslices.Map(all, func(sample probe.Sample) int64 { return sample.Memory })

	slices.Sort(res.RunTimes)

	return res, nil
}

func (s *Sampler) round(ctx context.Context, exec *batch.Executor) ([]probe.Sample, []any, error) {
	samples := make([]probe.Sample, s.parallel)
	inputs := make([]any, s.parallel)

	if err := parallel.DoContext(ctx, s.parallel, s.parallel, func(ctx context.Context, i int) (err error) {
		defer async.Recover(s.panicHandler, &err)

		logging.DoAnnotate(ctx, func(ctx context.Context) {
			var m probe.Measurement

			if m, inputs[i], err = exec.Measure(s.collector); err == nil {
				samples[i] = m.PerCall()
			}
		}, s.workerLabels(i))

		return err
	}); err != nil {
		return nil, nil, err
	}

	return samples, inputs, nil
}

func (s *Sampler) workerLabels(worker int) map[string]any {
	if s.labels == nil {
		return nil
	}

	labels := maps.Clone(s.labels)
	labels[logging.LabelWorker] = worker

	return labels
}
