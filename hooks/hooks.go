// Package hooks defines the lifecycle hooks that can be attached to a benchmark, either suite-wide (global) or for
// a single scenario (local), and resolves them into the ordered call sequence used while measuring.
package hooks

// BeforeFunc receives an input and returns the input that is passed on to the next step.
type BeforeFunc func(input any) (any, error)

// AfterFunc receives a value once the step it is attached to has completed.
type AfterFunc func(value any) error

// Set holds the four optional hook slots. Each-hooks run around every logical invocation of the benchmarked
// function; scenario hooks run once around a whole measurement phase.
type Set struct {
	BeforeEach     BeforeFunc
	AfterEach      AfterFunc
	BeforeScenario BeforeFunc
	AfterScenario  AfterFunc
}
