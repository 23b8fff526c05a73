// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"testing"
	"time"
)

func TestNewFakeClock_DefaultReference(t *testing.T) {
	t.Parallel()

	c := NewFakeClock(time.Time{})
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}

func TestFakeClock_AdvanceAndSince(t *testing.T) {
	t.Parallel()

	c := NewFakeClock(time.Time{})
	start := c.Now()

	c.Advance(1500 * time.Microsecond)
	if got := c.Since(start); got != 1500*time.Microsecond {
		t.Errorf("Since() = %v, want 1.5ms", got)
	}

	c.Advance(-2 * time.Millisecond)
	if got := c.Since(start); got != -500*time.Microsecond {
		t.Errorf("Since() after rewind = %v, want -500µs", got)
	}
}

func TestFakeClock_Set(t *testing.T) {
	t.Parallel()

	c := NewFakeClock(time.Time{})
	target := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	c.Set(target)
	if got := c.Now(); !got.Equal(target) {
		t.Errorf("Now() = %v, want %v", got, target)
	}
}
