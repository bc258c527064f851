// Package events defines the events published by the runner to its watchers.
package events

import "time"

type Event interface {
	_isEvent()
}

type eventBase struct{}

func (eventBase) _isEvent() {}

// ScenarioStarted is published before any hook of a scenario runs.
type ScenarioStarted struct {
	eventBase

	Job   string
	Input string
}

// FastWarning is published when the function of a scenario completes faster than can be measured reliably in a
// single invocation.
type FastWarning struct {
	eventBase

	Job   string
	Input string
}

// PhaseFinished is published after a warmup or measurement phase completed.
type PhaseFinished struct {
	eventBase

	Job        string
	Input      string
	Phase      string
	Iterations int
	Samples    int
	Elapsed    time.Duration
}

// ScenarioFinished is published once the samples of a scenario have been stored.
type ScenarioFinished struct {
	eventBase

	Job     string
	Input   string
	Samples int
}

// ScenarioFailed is published when measuring a scenario failed.
type ScenarioFailed struct {
	eventBase

	Job   string
	Input string
	Err   error
}
