package scenario

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildWithoutInputs(t *testing.T) {
	scenarios := Build([]Job{
		{Name: "a", Func: Wrap(func() {})},
		{Name: "b", Func: Wrap(func() {})},
	})

	require.Len(t, scenarios, 2)
	require.Equal(t, "a", scenarios[0].Job)
	require.Equal(t, "b", scenarios[1].Job)
	require.True(t, scenarios[0].Input.IsNone())
	require.Equal(t, "a", scenarios[0].Name())
}

func TestBuildWithInputs(t *testing.T) {
	scenarios := Build(
		[]Job{{Name: "sort"}, {Name: "hash"}},
		Input{Name: "small", Value: 10},
		Input{Name: "big", Value: 1000},
	)

	require.Len(t, scenarios, 4)

	var names []string

	for _, s := range scenarios {
		require.False(t, s.Input.IsNone())
		names = append(names, s.Name())
	}

	require.Equal(t, []string{
		"sort with input small",
		"sort with input big",
		"hash with input small",
		"hash with input big",
	}, names)
}

func TestWrap(t *testing.T) {
	var called int

	out, err := Wrap(func() { called++ })(NoInputValue)
	require.NoError(t, err)
	require.Nil(t, out)
	require.Equal(t, 1, called)
}

func TestReset(t *testing.T) {
	s := New(Job{Name: "a"}, NoInput)
	s.RunTimes = append(s.RunTimes, 1)
	s.Memory = append(s.Memory, 1)

	s.Reset()

	require.Empty(t, s.RunTimes)
	require.Empty(t, s.Memory)
}

func TestNoInputName(t *testing.T) {
	require.Equal(t, NoInputName, NoInput.Name)
	require.Equal(t, NoInputName, NoInputValue.(interface{ String() string }).String())
}
