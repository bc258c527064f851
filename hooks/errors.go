package hooks

import "fmt"

type Kind int

const (
	KindBeforeEach Kind = iota
	KindAfterEach
	KindBeforeScenario
	KindAfterScenario
)

func (k Kind) String() string {
	switch k {
	case KindBeforeEach:
		return "before_each"
	case KindAfterEach:
		return "after_each"
	case KindBeforeScenario:
		return "before_scenario"
	case KindAfterScenario:
		return "after_scenario"

	default:
		return "unknown"
	}
}

// Error is returned when a hook fails.
type Error struct {
	Kind   Kind
	Global bool
	Err    error
}

func (e *Error) Error() string {
	scope := "local"
	if e.Global {
		scope = "global"
	}

	return fmt.Sprintf("%v %v hook failed: %v", scope, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
