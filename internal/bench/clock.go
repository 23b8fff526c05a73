// SPDX-License-Identifier: MPL-2.0

package bench

import "time"

type (
	// Clock abstracts time for measurements.
	// Production code uses RealClock; tests use testutil.FakeClock.
	Clock interface {
		// Now returns the current time.
		Now() time.Time

		// Since returns the time elapsed since t.
		Since(t time.Time) time.Duration
	}

	// RealClock implements Clock using the system clock. Durations come from the
	// monotonic reading, so wall-clock adjustments never skew a measurement.
	RealClock struct{}
)

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t.
func (RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
