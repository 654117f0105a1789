package timez

import "time"

// Timer is a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running.
	// It returns false if the callback has already run or been stopped.
	Stop() bool
}

// Scheduler runs callbacks after at least the requested delay.
//
// Implementations must not assume anything about the clock resolution,
// and callbacks may run on any goroutine.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type system struct{}

// System returns the scheduler backed by the runtime timers.
func System() Scheduler {
	return system{}
}

func (system) Now() time.Time {
	return time.Now()
}

func (system) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
