package suites

import (
	"fmt"

	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/suite"
	"github.com/ProtonMail/stopwatch/hooks"
	"github.com/ProtonMail/stopwatch/scenario"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Sort measures sorting a slice of random integers. Every invocation sorts a fresh copy of the same data.
type Sort struct {
	sizes []int
}

func NewSort(sizes ...int) *Sort {
	return &Sort{sizes: sizes}
}

func (*Sort) Name() string {
	return "sort"
}

func (*Sort) Jobs() []scenario.Job {
	set := hooks.Set{
		BeforeScenario: func(in any) (any, error) {
			return randomInts(in.(int)), nil
		},
		BeforeEach: func(in any) (any, error) {
			return slices.Clone(in.([]int)), nil
		},
	}

	return []scenario.Job{
		{
			Name:  "sort-ints",
			Func:  sortInts,
			Hooks: set,
		},
		{
			Name:  "sort-ints-func",
			Func:  sortIntsFunc,
			Hooks: set,
		},
	}
}

func (s *Sort) Inputs() []scenario.Input {
	inputs := make([]scenario.Input, 0, len(s.sizes))

	for _, size := range s.sizes {
		inputs = append(inputs, scenario.Input{Name: fmt.Sprint(size), Value: size})
	}

	return inputs
}

func sortInts(in any) (any, error) {
	data := in.([]int)

	slices.Sort(data)

	return data, nil
}

func sortIntsFunc(in any) (any, error) {
	data := in.([]int)

	slices.SortFunc(data, func(a, b int) bool { return a < b })

	return data, nil
}

func randomInts(n int) []int {
	data := make([]int, n)

	for i := range data {
		data[i] = rand.Int()
	}

	return data
}

func init() {
	suite.Register(NewSort(100, 10000))
}
