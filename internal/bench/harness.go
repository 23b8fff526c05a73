// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type (
	// Harness times single operations and reports each measurement as a line.
	Harness struct {
		out    io.Writer
		clock  Clock
		logger *log.Logger
	}

	// Option configures a Harness.
	Option func(*Harness)
)

// WithClock sets the clock used for measurements. Default is RealClock.
func WithClock(c Clock) Option {
	return func(h *Harness) {
		h.clock = c
	}
}

// WithLogger sets the logger for per-measurement debug records.
// Default is a logger on stderr at info level, which keeps debug records silent.
func WithLogger(l *log.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// NewHarness creates a Harness that writes report lines to out.
func NewHarness(out io.Writer, opts ...Option) *Harness {
	h := &Harness{
		out:   out,
		clock: RealClock{},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "bench"})
	}
	return h
}

// Writer returns the report destination.
func (h *Harness) Writer() io.Writer {
	return h.out
}

// Measure runs op once, synchronously, and returns its elapsed wall-clock time in
// fractional milliseconds after printing "<label>: <ms> ms".
//
// Only the call to op is timed. When op fails nothing is printed and the error is
// returned with the label attached. Panics in op are not recovered.
func (h *Harness) Measure(label string, op func() error) (float64, error) {
	sample, err := h.measure(label, op)
	if err != nil {
		return 0, err
	}
	return sample.Millis(), nil
}

func (h *Harness) measure(label string, op func() error) (Sample, error) {
	h.logger.Debug("starting workload", "label", label)

	start := h.clock.Now()
	err := op()
	elapsed := h.clock.Since(start)

	if err != nil {
		h.logger.Debug("workload failed", "label", label, "error", err)
		return Sample{}, fmt.Errorf("%s: %w", label, err)
	}
	if elapsed < 0 {
		elapsed = 0
	}

	sample := Sample{Label: label, Elapsed: elapsed}
	if _, werr := fmt.Fprintln(h.out, sample.String()); werr != nil {
		return Sample{}, fmt.Errorf("write result for %s: %w", label, werr)
	}
	h.logger.Debug("workload finished", "label", label, "elapsed", elapsed)

	return sample, nil
}
