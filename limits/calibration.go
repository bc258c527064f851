package limits

import (
	"errors"
	"fmt"
	"math"
)

// Calibration contains the configurable upper limit on the number of invocations folded into one timed unit.
type Calibration struct {
	maxIterations int64
}

// CheckIterations returns an error if the given iteration count exceeds the limit.
func (c Calibration) CheckIterations(iterations int) error {
	if iterations < 1 || int64(iterations) > c.maxIterations {
		return ErrMaxIterationsReached
	}

	return nil
}

// NextIterations multiplies the iteration count by the given factor, failing instead of overflowing.
func (c Calibration) NextIterations(iterations int, factor int) (int, error) {
	if iterations < 1 || factor < 2 {
		return 0, fmt.Errorf("invalid iteration growth %v * %v", iterations, factor)
	}

	if int64(iterations) > c.maxIterations/int64(factor) {
		return 0, ErrMaxIterationsReached
	}

	next := iterations * factor

	if err := c.CheckIterations(next); err != nil {
		return 0, err
	}

	return next, nil
}

// MaxIterations returns the configured limit.
func (c Calibration) MaxIterations() int64 {
	return c.maxIterations
}

func DefaultLimits() Calibration {
	return Calibration{
		maxIterations: math.MaxInt,
	}
}

func NewCalibrationLimits(maxIterations uint32) Calibration {
	if maxIterations == 0 {
		maxIterations = 1
	}

	return Calibration{
		maxIterations: int64(maxIterations),
	}
}

var ErrMaxIterationsReached = fmt.Errorf("max calibration iteration count reached")

func IsLimitErr(err error) bool {
	return errors.Is(err, ErrMaxIterationsReached)
}
