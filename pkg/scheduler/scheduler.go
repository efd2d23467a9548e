package scheduler

import "time"

// Timer is a cancellable deferred callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns true if the call
	// stopped the timer, false if the timer had already fired or been stopped.
	Stop() bool
}

// Scheduler schedules callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// Real schedules callbacks on the runtime timer heap.
type Real struct{}

// NewReal returns a Scheduler backed by time.AfterFunc.
func NewReal() Real {
	return Real{}
}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (Real) Now() time.Time {
	return time.Now()
}
