// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// labelSeparator splits a report line into label and value.
	labelSeparator = ": "
	// unitSuffix terminates every report line.
	unitSuffix = " ms"
)

// maxMillis bounds the millisecond values a time.Duration can hold (exclusive).
const maxMillis = float64(math.MaxInt64) / float64(time.Millisecond)

// ErrMalformedSample is returned by ParseSample for lines that are not timing lines.
var ErrMalformedSample = errors.New("malformed sample line")

// Sample is one timing measurement paired with its label.
type Sample struct {
	Label   string
	Elapsed time.Duration
}

// Millis returns the elapsed time in fractional milliseconds at microsecond
// resolution. Negative durations report as zero.
func (s Sample) Millis() float64 {
	if s.Elapsed < 0 {
		return 0
	}
	return float64(s.Elapsed.Microseconds()) / 1000.0
}

// String renders the sample as a report line without the trailing newline.
func (s Sample) String() string {
	return s.Label + labelSeparator + strconv.FormatFloat(s.Millis(), 'f', 3, 64) + unitSuffix
}

// ParseSample parses a "<label>: <milliseconds> ms" report line. The line must
// split into exactly one label and one value, and the value must be a finite,
// non-negative number that fits a time.Duration.
func ParseSample(line string) (Sample, error) {
	line = strings.TrimSpace(line)
	if !strings.HasSuffix(line, unitSuffix) {
		return Sample{}, fmt.Errorf("%w: missing %q suffix: %q", ErrMalformedSample, unitSuffix, line)
	}

	parts := strings.Split(line, labelSeparator)
	if len(parts) != 2 {
		return Sample{}, fmt.Errorf("%w: want exactly one %q separator: %q", ErrMalformedSample, labelSeparator, line)
	}
	if parts[0] == "" {
		return Sample{}, fmt.Errorf("%w: missing label: %q", ErrMalformedSample, line)
	}

	label := parts[0]
	value := strings.TrimSuffix(parts[1], unitSuffix)
	ms, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %w", ErrMalformedSample, err)
	}
	switch {
	case math.IsNaN(ms) || math.IsInf(ms, 0):
		return Sample{}, fmt.Errorf("%w: non-finite duration %q", ErrMalformedSample, value)
	case ms < 0:
		return Sample{}, fmt.Errorf("%w: negative duration %q", ErrMalformedSample, value)
	case ms >= maxMillis:
		return Sample{}, fmt.Errorf("%w: duration %q out of range", ErrMalformedSample, value)
	}

	return Sample{
		Label:   label,
		Elapsed: time.Duration(ms * float64(time.Millisecond)).Round(time.Microsecond),
	}, nil
}
