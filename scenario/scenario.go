// Package scenario describes the units of work handed to the runner: one scenario per (job, input) pair.
package scenario

import (
	"fmt"
	"time"

	"github.com/ProtonMail/stopwatch/hooks"
)

// Func is the function under measurement. Its return value is handed to the after-each hooks.
type Func func(input any) (any, error)

// Wrap adapts a function taking no input and returning nothing.
func Wrap(fn func()) Func {
	return func(any) (any, error) {
		fn()
		return nil, nil
	}
}

type noInput struct{}

func (noInput) String() string {
	return NoInputName
}

// NoInputName is the name of the NoInput sentinel.
const NoInputName = "__no_input"

// NoInputValue is passed to functions and hooks of scenarios built without inputs.
var NoInputValue any = noInput{}

// NoInput marks a scenario whose function takes no input.
var NoInput = Input{Name: NoInputName, Value: NoInputValue}

// Input is a named value handed to a job.
type Input struct {
	Name  string
	Value any
}

// IsNone returns true if the input is the NoInput sentinel.
func (in Input) IsNone() bool {
	return in.Value == NoInputValue
}

// Job is a named function with its local hooks.
type Job struct {
	Name  string
	Func  Func
	Hooks hooks.Set
}

// Scenario is one job paired with one input, together with the samples collected for it.
type Scenario struct {
	Job   string
	Input Input
	Func  Func
	Hooks hooks.Set

	// RunTimes holds the duration of one logical invocation per sample, sorted ascending.
	RunTimes []time.Duration

	// Memory holds the heap delta in bytes of one logical invocation per sample, in collection order.
	// Positions do not correspond to RunTimes.
	Memory []int64
}

// New creates a scenario for the given job and input.
func New(job Job, input Input) *Scenario {
	return &Scenario{
		Job:   job.Name,
		Input: input,
		Func:  job.Func,
		Hooks: job.Hooks,
	}
}

// Build creates one scenario per (job, input) pair, jobs major.
// When no inputs are given every job gets a single scenario with NoInput.
func Build(jobs []Job, inputs ...Input) []*Scenario {
	if len(inputs) == 0 {
		inputs = []Input{NoInput}
	}

	scenarios := make([]*Scenario, 0, len(jobs)*len(inputs))

	for _, job := range jobs {
		for _, input := range inputs {
			scenarios = append(scenarios, New(job, input))
		}
	}

	return scenarios
}

// Name returns a human readable name for the scenario.
func (s *Scenario) Name() string {
	if s.Input.IsNone() {
		return s.Job
	}

	return fmt.Sprintf("%v with input %v", s.Job, s.Input.Name)
}

// Reset drops any previously collected samples.
func (s *Scenario) Reset() {
	s.RunTimes = nil
	s.Memory = nil
}
