package gesture

import "time"

// Timer is a pending callback that can be stopped
type Timer interface {
	Stop() bool
}

// Clock supplies time and delayed callbacks. Tests replace it with a manual clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the wall clock backed by time.AfterFunc
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
