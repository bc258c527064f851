package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	info := NewInfo("tool")

	require.Equal(t, "1.2.3", Version{Major: 1, Minor: 2, Patch: 3}.String())
	require.Equal(t, Current, info.Version)
	require.Equal(t, runtime.NumCPU(), info.NumCPU)
	require.Contains(t, info.String(), "tool "+Current.String()+" ("+runtime.Version())
}
