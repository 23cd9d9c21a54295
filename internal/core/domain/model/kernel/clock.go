package kernel

import "time"

// Clock supplies the current time to the lifecycle rules. Start and end of a
// rental are always taken from the server clock, never from the client.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC, truncated to the microsecond
// precision of the order store so that a persisted timestamp equals the
// in-memory value it was written from.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ClockFunc adapts a function to Clock.
//
// Example:
//
//	fixed := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
//	clock := kernel.ClockFunc(func() time.Time { return fixed })
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}
