package limits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextIterations(t *testing.T) {
	lim := DefaultLimits()

	next, err := lim.NextIterations(1, 10)
	require.NoError(t, err)
	require.Equal(t, 10, next)

	next, err = lim.NextIterations(next, 10)
	require.NoError(t, err)
	require.Equal(t, 100, next)
}

func TestNextIterationsOverflow(t *testing.T) {
	lim := DefaultLimits()

	_, err := lim.NextIterations(math.MaxInt/10+1, 10)
	require.ErrorIs(t, err, ErrMaxIterationsReached)
	require.True(t, IsLimitErr(err))

	// Growing by powers of ten eventually hits the limit rather than wrapping around.
	iterations := 1

	for {
		next, err := lim.NextIterations(iterations, 10)
		if err != nil {
			require.True(t, IsLimitErr(err))
			break
		}

		require.Greater(t, next, iterations)
		iterations = next
	}
}

func TestNewCalibrationLimits(t *testing.T) {
	lim := NewCalibrationLimits(1000)
	require.Equal(t, int64(1000), lim.MaxIterations())

	next, err := lim.NextIterations(100, 10)
	require.NoError(t, err)
	require.Equal(t, 1000, next)

	_, err = lim.NextIterations(1000, 10)
	require.True(t, IsLimitErr(err))

	require.NoError(t, lim.CheckIterations(1))
	require.Error(t, lim.CheckIterations(0))
	require.Error(t, lim.CheckIterations(1001))
}

func TestNextIterationsInvalid(t *testing.T) {
	_, err := DefaultLimits().NextIterations(0, 10)
	require.Error(t, err)
	require.False(t, IsLimitErr(err))

	_, err = DefaultLimits().NextIterations(1, 1)
	require.Error(t, err)
}
