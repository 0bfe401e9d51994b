package session

import "time"

// Timer is the cancellable handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock abstracts time so the monitor can be driven deterministically in
// tests. All scheduling inside the monitor goes through this interface;
// nothing calls the time package directly.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NewRealClock returns a Clock backed by the time package.
func NewRealClock() Clock { return realClock{} }
