// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests: a manually driven FakeClock for
// deterministic timing, and Must* filesystem helpers that fail the test instead of
// returning errors.
package testutil
