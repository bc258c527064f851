package suites

import (
	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/suite"
	"github.com/ProtonMail/stopwatch/hooks"
	"github.com/ProtonMail/stopwatch/scenario"
	"github.com/google/uuid"
)

// UUID measures generating and parsing UUIDs.
type UUID struct{}

func (UUID) Name() string {
	return "uuid"
}

func (UUID) Jobs() []scenario.Job {
	return []scenario.Job{
		{
			Name: "uuid-new",
			Func: func(any) (any, error) {
				return uuid.New(), nil
			},
		},
		{
			Name: "uuid-parse",
			Func: func(in any) (any, error) {
				return uuid.Parse(in.(string))
			},
			Hooks: hooks.Set{
				BeforeScenario: func(any) (any, error) {
					return uuid.NewString(), nil
				},
			},
		},
	}
}

func (UUID) Inputs() []scenario.Input {
	return nil
}

func init() {
	suite.Register(UUID{})
}
