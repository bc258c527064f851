package stopwatch

import (
	"errors"

	"github.com/ProtonMail/stopwatch/async"
	"github.com/ProtonMail/stopwatch/hooks"
	"github.com/ProtonMail/stopwatch/internal/batch"
	"github.com/ProtonMail/stopwatch/limits"
)

// IsHookFailure returns true if the error was returned by a hook.
func IsHookFailure(err error) bool {
	var hookErr *hooks.Error
	return errors.As(err, &hookErr)
}

// IsFuncFailure returns true if the error was returned by the function under measurement.
func IsFuncFailure(err error) bool {
	var funcErr *batch.FuncError
	return errors.As(err, &funcErr)
}

// IsCalibrationOverflow returns true if the function was too fast for any allowed batch size to be timed reliably.
func IsCalibrationOverflow(err error) bool {
	return limits.IsLimitErr(err)
}

// IsPanic returns true if the error was recovered from a panic in a function or hook.
func IsPanic(err error) bool {
	var panicErr *async.PanicError
	return errors.As(err, &panicErr)
}
