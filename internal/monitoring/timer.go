package monitoring

import "time"

// Timer measures elapsed wall time of one operation
type Timer struct {
	start time.Time
}

// StartTimer starts timing
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
