package probe

import "time"

// Timer tracks the duration between invocations to Start and Stop.
// time.Now carries a monotonic reading, so Elapsed is not affected by wall clock changes.
type Timer struct {
	start time.Time
	end   time.Time
}

func (t *Timer) Start() {
	t.start = time.Now()
}

func (t *Timer) Stop() {
	t.end = time.Now()
}

func (t *Timer) Elapsed() time.Duration {
	return t.end.Sub(t.start)
}
