// Package clock abstracts the current time so output that embeds timestamps
// stays deterministic under test.
package clock

import "time"

// Clock returns the current time.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() Clock { return time.Now }

// FrozenClock always returns t.
func FrozenClock(t time.Time) Clock { return func() time.Time { return t } }

// SteppingClock starts at t and advances by step on every call. It is not
// safe for concurrent use.
func SteppingClock(t time.Time, step time.Duration) Clock {
	next := t
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
