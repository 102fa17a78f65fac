package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies the current time to a logger.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock on every call.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of
// the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}

// CoarseClock is a Clock backed by the cached coarse time. Timestamps
// are rendered with at most second precision, so the 500µs staleness
// is never visible in output.
type CoarseClock struct{}

// NewCoarseClock starts the coarse clock goroutine and returns a Clock
// reading from it.
func NewCoarseClock() CoarseClock {
	StartCoarseClock()
	return CoarseClock{}
}

// Now returns CoarseNow().
func (CoarseClock) Now() time.Time {
	return CoarseNow()
}
