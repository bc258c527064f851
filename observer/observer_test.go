package observer

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	starts   []string
	warnings int
}

func (r *recorder) Start(job, input string) {
	r.starts = append(r.starts, job+"/"+input)
}

func (r *recorder) FastWarning() {
	r.warnings++
}

func TestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()

	obs := NewLogger(logrus.NewEntry(logger))

	obs.Start("sort", "small")
	obs.FastWarning()

	require.Len(t, hook.AllEntries(), 2)

	start := hook.AllEntries()[0]
	require.Equal(t, logrus.InfoLevel, start.Level)
	require.Equal(t, "sort", start.Data["job"])
	require.Equal(t, "small", start.Data["input"])

	warning := hook.LastEntry()
	require.Equal(t, logrus.WarnLevel, warning.Level)
	require.Equal(t, "sort", warning.Data["job"])
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}

	obs := Multi{a, Null{}, b}

	obs.Start("hash", "__no_input")
	obs.FastWarning()

	require.Equal(t, []string{"hash/__no_input"}, a.starts)
	require.Equal(t, a, b)
	require.Equal(t, 1, b.warnings)
}

func TestNewLoggerDefault(t *testing.T) {
	require.NotPanics(t, func() {
		NewLogger(nil).Start("job", "input")
	})
}
