package profiling

const (
	PhaseWarmup      = 0
	PhaseMeasurement = 1
	PhaseTotal       = 2
)

func PhaseToString(phase int) string {
	switch phase {
	case PhaseWarmup:
		return "warmup"
	case PhaseMeasurement:
		return "measurement"

	default:
		return "unknown"
	}
}

// PhaseProfiler is the interface that can be used to perform measurements related to the phases the runner goes
// through for each scenario.
type PhaseProfiler interface {
	// Start will be called right before the phase's before-scenario hooks run.
	Start(phase int)
	// Stop will be called once the phase's after-scenario hooks have completed.
	Stop(phase int)
}

// NullPhaseProfiler represents a null implementation of PhaseProfiler.
type NullPhaseProfiler struct{}

func (*NullPhaseProfiler) Start(int) {}

func (*NullPhaseProfiler) Stop(int) {}
