// Package suite holds the registry of benchmark suites known to the CLI.
package suite

import (
	"github.com/ProtonMail/stopwatch/scenario"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Suite interface {
	// Name should return the name of the suite. It will also be used to match against cli args.
	Name() string

	// Jobs returns the jobs of the suite. Setup and teardown belong in their scenario hooks.
	Jobs() []scenario.Job

	// Inputs returns the inputs every job is run with. No inputs means every job runs once, without input.
	Inputs() []scenario.Input
}

var suites = make(map[string]Suite)

func Register(suite Suite) {
	if _, ok := suites[suite.Name()]; ok {
		panic("Suite with this name already exists")
	}

	suites[suite.Name()] = suite
}

func Get(name string) (Suite, bool) {
	suite, ok := suites[name]

	return suite, ok
}

// Names returns the names of all registered suites, sorted.
func Names() []string {
	names := maps.Keys(suites)

	slices.Sort(names)

	return names
}

// Scenarios builds the scenarios of the given suites, in order.
func Scenarios(selected ...Suite) []*scenario.Scenario {
	var scenarios []*scenario.Scenario

	for _, suite := range selected {
		scenarios = append(scenarios, scenario.Build(suite.Jobs(), suite.Inputs()...)...)
	}

	return scenarios
}
