package async

import (
	"fmt"
	"runtime/debug"
)

// PanicHandler is notified of panics raised by benchmarked code running on worker goroutines.
type PanicHandler interface {
	HandlePanic(value any)
}

type NoopPanicHandler struct{}

func (n NoopPanicHandler) HandlePanic(any) {}

// PanicError is returned in place of a recovered panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Recover must be deferred directly. It turns a panic into a *PanicError stored in errPtr and forwards the
// panic value to the handler, if any.
func Recover(panicHandler PanicHandler, errPtr *error) {
	r := recover()
	if r == nil {
		return
	}

	if panicHandler != nil {
		panicHandler.HandlePanic(r)
	}

	if errPtr != nil {
		*errPtr = &PanicError{Value: r, Stack: debug.Stack()}
	}
}
