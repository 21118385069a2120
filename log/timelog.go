package log

import "time"

// Timer records how long a named step ran and logs it at debug level.
type Timer struct {
	StartTime time.Time
	EndTime   time.Time
	Name      string

	logger Logger
}

// NewTimer starts a timer for name.
func NewTimer(name string, logger Logger) *Timer {
	t := &Timer{Name: name, logger: logger}
	t.StartTime = time.Now()
	t.logger.Debugf("Timer: %s started at %s", t.Name, t.StartTime.Format(time.RFC3339))
	return t
}

// Stop is usually deferred right after NewTimer.
func (t *Timer) Stop() time.Duration {
	t.EndTime = time.Now()
	elapsed := t.EndTime.Sub(t.StartTime)
	t.logger.Debugf("Timer: %s ran for %v and ended at %s", t.Name, elapsed, t.EndTime.Format(time.RFC3339))
	return elapsed
}
