// Package stopwatch runs benchmark scenarios: it calibrates how many invocations of a function make up one
// reliable sample, then samples it in parallel rounds until the configured time has passed.
package stopwatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ProtonMail/stopwatch/async"
	"github.com/ProtonMail/stopwatch/config"
	"github.com/ProtonMail/stopwatch/events"
	"github.com/ProtonMail/stopwatch/hooks"
	"github.com/ProtonMail/stopwatch/internal/batch"
	"github.com/ProtonMail/stopwatch/internal/calibrate"
	"github.com/ProtonMail/stopwatch/internal/probe"
	"github.com/ProtonMail/stopwatch/internal/sampler"
	"github.com/ProtonMail/stopwatch/limits"
	"github.com/ProtonMail/stopwatch/observer"
	"github.com/ProtonMail/stopwatch/profiling"
	"github.com/ProtonMail/stopwatch/reporter"
	"github.com/ProtonMail/stopwatch/scenario"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Runner measures scenarios, one at a time.
type Runner struct {
	observer     observer.Observer
	reporter     reporter.Reporter
	panicHandler async.PanicHandler
	profiler     profiling.PhaseProfiler
	limits       limits.Calibration
	collector    *probe.Collector

	// watchers holds streams of events.
	watchers     []*watcher
	watchersLock sync.RWMutex
}

// New creates a new runner with the given options.
func New(withOpt ...Option) *Runner {
	builder := newBuilder()

	for _, opt := range withOpt {
		opt.config(builder)
	}

	return builder.build()
}

// scenarioContext is the state threaded through the phases of one scenario.
type scenarioContext struct {
	config   config.Configuration
	scenario *scenario.Scenario
	chain    *hooks.Chain

	// scenarioInput is the output of the before-scenario hooks of the current phase.
	scenarioInput any

	// input is the last input produced by the before-each hooks, or scenarioInput if none ran.
	input any

	iterations  int
	endTime     time.Time
	currentTime time.Time
}

// Run measures the scenarios in order. It stops at the first scenario that fails.
func (r *Runner) Run(ctx context.Context, cfg config.Configuration, scenarios []*scenario.Scenario) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, sc := range scenarios {
		if err := r.measureScenario(ctx, cfg, sc); err != nil {
			return err
		}
	}

	return nil
}

// Measure measures one scenario, replacing its samples. If measuring fails, the scenario is left without samples.
func (r *Runner) Measure(ctx context.Context, cfg config.Configuration, sc *scenario.Scenario) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	return r.measureScenario(ctx, cfg, sc)
}

// measureScenario measures one scenario with an already validated configuration.
func (r *Runner) measureScenario(ctx context.Context, cfg config.Configuration, sc *scenario.Scenario) error {
	ctx = reporter.NewContextWithReporter(ctx, r.reporter)
	ctx = profiling.WithProfiler(ctx, r.profiler)

	sc.Reset()

	r.observer.Start(sc.Job, sc.Input.Name)
	r.publish(events.ScenarioStarted{Job: sc.Job, Input: sc.Input.Name})

	sctx := &scenarioContext{
		config:   cfg,
		scenario: sc,
		chain:    hooks.Resolve(cfg.Hooks, sc.Hooks),
	}

	if err := r.measure(ctx, sctx); err != nil {
		logrus.WithError(err).WithField("job", sc.Job).WithField("input", sc.Input.Name).Error("Failed to measure scenario")

		reporter.ScenarioFailed(ctx, sc.Job, sc.Input.Name, err)
		r.publish(events.ScenarioFailed{Job: sc.Job, Input: sc.Input.Name, Err: err})

		sc.Reset()

		return fmt.Errorf("failed to measure %v: %w", sc.Name(), err)
	}

	r.publish(events.ScenarioFinished{Job: sc.Job, Input: sc.Input.Name, Samples: len(sc.RunTimes)})

	return nil
}

func (r *Runner) measure(ctx context.Context, sctx *scenarioContext) (err error) {
	defer async.Recover(r.panicHandler, &err)

	if sctx.config.Warmup > 0 {
		if _, err := r.runPhase(ctx, sctx, profiling.PhaseWarmup, sctx.config.Warmup, false); err != nil {
			return err
		}
	}

	if sctx.config.Time <= 0 {
		sctx.scenario.RunTimes = []time.Duration{}
		sctx.scenario.Memory = []int64{}

		return nil
	}

	res, err := r.runPhase(ctx, sctx, profiling.PhaseMeasurement, sctx.config.Time, sctx.config.PrintFastWarning)
	if err != nil {
		return err
	}

	sctx.scenario.RunTimes = res.RunTimes
	sctx.scenario.Memory = res.Memory

	return nil
}

// runPhase runs the before-scenario hooks, calibrates, samples until the phase's deadline and runs the
// after-scenario hooks. Calibration is redone for every phase.
func (r *Runner) runPhase(
	ctx context.Context,
	sctx *scenarioContext,
	phase int,
	duration time.Duration,
	fastWarning bool,
) (*sampler.Result, error) {
	profiling.Start(ctx, phase)
	defer profiling.Stop(ctx, phase)

	sc := sctx.scenario
	start := time.Now()

	input, err := sctx.chain.BeforeScenario(sc.Input.Value)
	if err != nil {
		return nil, err
	}

	sctx.scenarioInput, sctx.input = input, input

	r.collector.Reclaim()

	sctx.currentTime = time.Now()
	sctx.endTime = sctx.currentTime.Add(duration)

	newExecutor := func(iterations int) *batch.Executor {
		return batch.New(sc.Func, sctx.chain, sctx.scenarioInput, iterations)
	}

	var warn func()

	if fastWarning {
		warn = func() {
			r.observer.FastWarning()
			r.publish(events.FastWarning{Job: sc.Job, Input: sc.Input.Name})
		}
	}

	cal, err := calibrate.New(r.limits).Calibrate(ctx, newExecutor, r.collector, warn)
	if err != nil {
		return nil, err
	}

	exec := newExecutor(cal.Iterations)
	sctx.iterations = exec.Iterations()

	if fastWarning && sctx.iterations > 1 {
		reporter.FastFunction(ctx, sc.Job, sc.Input.Name, sctx.iterations)
	}

	res, err := sampler.New(sctx.config.Parallel, r.collector, r.panicHandler).
		WithLabels(sc.Job, sc.Input.Name, profiling.PhaseToString(phase)).
		Run(ctx, exec, sctx.endTime, sampler.Seed{Sample: cal.Measurement.PerCall(), Input: cal.Input})
	if err != nil {
		return nil, err
	}

	sctx.input = res.Input
	sctx.currentTime = time.Now()

	if err := sctx.chain.AfterScenario(sctx.input); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)

	logrus.WithFields(logrus.Fields{
		"job":        sc.Job,
		"input":      sc.Input.Name,
		"phase":      profiling.PhaseToString(phase),
		"iterations": sctx.iterations,
		"samples":    len(res.RunTimes),
		"rounds":     res.Rounds,
		"overrun":    sctx.currentTime.Sub(sctx.endTime),
	}).Debug("Phase finished")

	r.publish(events.PhaseFinished{
		Job:        sc.Job,
		Input:      sc.Input.Name,
		Phase:      profiling.PhaseToString(phase),
		Iterations: sctx.iterations,
		Samples:    len(res.RunTimes),
		Elapsed:    elapsed,
	})

	return res, nil
}

// AddWatcher adds a new watcher which watches events of the given types.
// If no types are specified, the watcher watches all events.
func (r *Runner) AddWatcher(ofType ...events.Event) <-chan events.Event {
	r.watchersLock.Lock()
	defer r.watchersLock.Unlock()

	watcher := newWatcher(ofType...)

	r.watchers = append(r.watchers, watcher)

	return watcher.channel()
}

// RemoveWatcher removes the watcher from the runner and closes its channel. Events not yet read are dropped.
func (r *Runner) RemoveWatcher(ch <-chan events.Event) {
	r.watchersLock.Lock()
	defer r.watchersLock.Unlock()

	idx := slices.IndexFunc(r.watchers, func(w *watcher) bool { return w.channel() == ch })
	if idx < 0 {
		return
	}

	r.watchers[idx].abandon()
	r.watchers = slices.Delete(r.watchers, idx, idx+1)
}

// Close closes all watchers. Events already published are still delivered.
func (r *Runner) Close() {
	r.watchersLock.Lock()
	defer r.watchersLock.Unlock()

	for _, watcher := range r.watchers {
		watcher.stop()
	}

	r.watchers = nil
}

func (r *Runner) publish(event events.Event) {
	r.watchersLock.RLock()
	defer r.watchersLock.RUnlock()

	for _, watcher := range r.watchers {
		if watcher.wants(event) && !watcher.deliver(event) {
			logrus.WithField("event", event).Warn("Failed to send event to watcher")
		}
	}
}
