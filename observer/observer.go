// Package observer defines how the runner reports progress while it works through the scenarios of a suite.
package observer

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Observer is notified by the runner. Calls are made from the runner's goroutine, one scenario at a time.
type Observer interface {
	// Start is called once per scenario, before any hook runs.
	Start(job, input string)

	// FastWarning is called at most once per scenario, when the function completes too fast to be timed reliably
	// one invocation at a time. It refers to the scenario of the last call to Start.
	FastWarning()
}

// Null ignores every notification.
type Null struct{}

func (Null) Start(string, string) {}

func (Null) FastWarning() {}

// Logger writes notifications to a logrus logger.
type Logger struct {
	entry *logrus.Entry

	lock  sync.Mutex
	job   string
	input string
}

func NewLogger(entry *logrus.Entry) *Logger {
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Logger{entry: entry}
}

func (l *Logger) Start(job, input string) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.job, l.input = job, input

	l.entry.WithField("job", job).WithField("input", input).Info("Benchmarking")
}

func (l *Logger) FastWarning() {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.entry.WithField("job", l.job).WithField("input", l.input).Warn(
		"Function executes too fast to be measured reliably on its own, it is repeated inside each sample. " +
			"Measurements include the loop overhead and any each-hooks.",
	)
}

// Multi forwards notifications to several observers in order.
type Multi []Observer

func (m Multi) Start(job, input string) {
	for _, o := range m {
		o.Start(job, input)
	}
}

func (m Multi) FastWarning() {
	for _, o := range m {
		o.FastWarning()
	}
}
