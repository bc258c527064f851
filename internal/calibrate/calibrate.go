// Package calibrate finds how many invocations must be folded into one timed unit for timing noise to stay low.
package calibrate

import (
	"context"
	"fmt"
	"time"

	"github.com/ProtonMail/stopwatch/internal/batch"
	"github.com/ProtonMail/stopwatch/internal/probe"
	"github.com/ProtonMail/stopwatch/limits"
)

const (
	// MinimumRunTime is the smallest raw duration of a timed unit considered reliable.
	MinimumRunTime = 10 * time.Microsecond

	// Factor is the growth of the batch size between attempts.
	Factor = 10
)

// Result is the outcome of a successful calibration.
type Result struct {
	// Iterations is the batch size.
	Iterations int

	// Measurement is the measurement that met the threshold; it counts as a sample.
	Measurement probe.Measurement

	// Input is the last input produced by the before-each hooks during that measurement.
	Input any
}

type Calibrator struct {
	limits    limits.Calibration
	threshold time.Duration
}

func New(lim limits.Calibration) *Calibrator {
	return &Calibrator{
		limits:    lim,
		threshold: MinimumRunTime,
	}
}

// Calibrate measures units of growing batch size until one takes at least the minimum run time.
// warn, if not nil, is called once, on the first attempt that was too fast.
func (c *Calibrator) Calibrate(
	ctx context.Context,
	newExecutor func(iterations int) *batch.Executor,
	collector *probe.Collector,
	warn func(),
) (Result, error) {
	iterations := 1
	warned := false

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		m, input, err := newExecutor(iterations).Measure(collector)
		if err != nil {
			return Result{}, err
		}

		if m.Elapsed >= c.threshold {
			return Result{Iterations: iterations, Measurement: m, Input: input}, nil
		}

		if !warned && warn != nil {
			warn()
		}

		warned = true

		next, err := c.limits.NextIterations(iterations, Factor)
		if err != nil {
			return Result{}, fmt.Errorf("calibration did not reach %v after %v of at most %v iterations: %w",
				c.threshold, iterations, c.limits.MaxIterations(), err)
		}

		iterations = next
	}
}
