// Package batch builds the measured unit of a scenario: one or more logical invocations of its function.
package batch

import (
	"fmt"

	"github.com/ProtonMail/stopwatch/hooks"
	"github.com/ProtonMail/stopwatch/internal/probe"
	"github.com/ProtonMail/stopwatch/scenario"
)

// FuncError is returned when the function under measurement fails.
type FuncError struct {
	Err error
}

func (e *FuncError) Error() string {
	return fmt.Sprintf("benchmarked function failed: %v", e.Err)
}

func (e *FuncError) Unwrap() error {
	return e.Err
}

type strategy int

const (
	// strategySingle runs each-hooks outside the timed region around a single timed call.
	strategySingle strategy = iota

	// strategyRepeat repeats the bare function; no each-hooks are configured.
	strategyRepeat

	// strategyRepeatWithHooks repeats before-each, call and after-each inside the timed region.
	// The hooks' own cost becomes part of the measured duration.
	strategyRepeatWithHooks
)

// Executor performs one measured unit. It is immutable and can be shared by parallel workers.
type Executor struct {
	fn         scenario.Func
	chain      *hooks.Chain
	input      any
	iterations int
	strategy   strategy
}

// New builds an executor running fn on input, which is the output of the before-scenario hooks.
func New(fn scenario.Func, chain *hooks.Chain, input any, iterations int) *Executor {
	if iterations < 1 {
		iterations = 1
	}

	exec := &Executor{
		fn:         fn,
		chain:      chain,
		input:      input,
		iterations: iterations,
	}

	switch {
	case iterations == 1:
		exec.strategy = strategySingle

	case chain.HasEach():
		exec.strategy = strategyRepeatWithHooks

	default:
		exec.strategy = strategyRepeat
	}

	return exec
}

func (e *Executor) Iterations() int {
	return e.iterations
}

// Measure performs the unit with the given collector. It returns the measurement and the last input produced by
// the before-each hooks, or the executor's input if there are none.
func (e *Executor) Measure(collector *probe.Collector) (probe.Measurement, any, error) {
	switch e.strategy {
	case strategyRepeat:
		return e.measureRepeat(collector)

	case strategyRepeatWithHooks:
		return e.measureRepeatWithHooks(collector)

	default:
		return e.measureSingle(collector)
	}
}

func (e *Executor) measureSingle(collector *probe.Collector) (probe.Measurement, any, error) {
	input, err := e.chain.BeforeEach(e.input)
	if err != nil {
		return probe.Measurement{}, nil, err
	}

	var output any

	m, err := collector.Measure(func() error {
		out, err := e.fn(input)
		if err != nil {
			return &FuncError{Err: err}
		}

		output = out

		return nil
	}, 1)
	if err != nil {
		return probe.Measurement{}, nil, err
	}

	if err := e.chain.AfterEach(output); err != nil {
		return probe.Measurement{}, nil, err
	}

	return m, input, nil
}

func (e *Executor) measureRepeat(collector *probe.Collector) (probe.Measurement, any, error) {
	fn, input, iterations := e.fn, e.input, e.iterations

	m, err := collector.Measure(func() error {
		for i := 0; i < iterations; i++ {
			if _, err := fn(input); err != nil {
				return &FuncError{Err: err}
			}
		}

		return nil
	}, iterations)
	if err != nil {
		return probe.Measurement{}, nil, err
	}

	return m, input, nil
}

func (e *Executor) measureRepeatWithHooks(collector *probe.Collector) (probe.Measurement, any, error) {
	last := e.input

	m, err := collector.Measure(func() error {
		for i := 0; i < e.iterations; i++ {
			input, err := e.chain.BeforeEach(e.input)
			if err != nil {
				return err
			}

			out, err := e.fn(input)
			if err != nil {
				return &FuncError{Err: err}
			}

			if err := e.chain.AfterEach(out); err != nil {
				return err
			}

			last = input
		}

		return nil
	}, e.iterations)
	if err != nil {
		return probe.Measurement{}, nil, err
	}

	return m, last, nil
}
