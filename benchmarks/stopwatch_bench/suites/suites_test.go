package suites

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ProtonMail/stopwatch"
	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/suite"
	"github.com/ProtonMail/stopwatch/config"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func testConfig() config.Configuration {
	return config.Configuration{
		Time:     2 * time.Millisecond,
		Parallel: 2,
	}
}

func TestRegistered(t *testing.T) {
	require.Subset(t, suite.Names(), []string{"badger", "sort", "uuid"})
}

func TestSort(t *testing.T) {
	sorter := NewSort(10, 100)

	scenarios := suite.Scenarios(sorter)
	require.Len(t, scenarios, 4)
	require.NoError(t, stopwatch.New().Run(context.Background(), testConfig(), scenarios))

	for _, sc := range scenarios {
		require.NotEmpty(t, sc.RunTimes)
	}

	data := randomInts(50)

	out, err := sortInts(slices.Clone(data))
	require.NoError(t, err)
	require.True(t, slices.IsSorted(out.([]int)))

	out, err = sortIntsFunc(slices.Clone(data))
	require.NoError(t, err)
	require.True(t, slices.IsSorted(out.([]int)))
}

func TestUUID(t *testing.T) {
	scenarios := suite.Scenarios(UUID{})
	require.Len(t, scenarios, 2)
	require.NoError(t, stopwatch.New().Run(context.Background(), testConfig(), scenarios))
}

func TestBadger(t *testing.T) {
	badger := NewBadger(10, []byte("passphrase"), 16)

	var dirs []string

	// Record the directories of the stores before they are removed.
	for _, job := range badger.Jobs() {
		hooks := job.Hooks

		state, err := hooks.BeforeScenario(16)
		require.NoError(t, err)

		dirs = append(dirs, state.(*badgerState).store.Dir())

		_, err = job.Func(state)
		require.NoError(t, err)

		require.NoError(t, hooks.AfterScenario(state))
	}

	for _, dir := range dirs {
		_, err := os.Stat(dir)
		require.True(t, os.IsNotExist(err))
	}

	scenarios := suite.Scenarios(badger)
	require.Len(t, scenarios, 2)
	require.NoError(t, stopwatch.New().Run(context.Background(), testConfig(), scenarios))

	require.Panics(t, func() { NewBadger(0, nil) })
}
