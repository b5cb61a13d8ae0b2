// Package timepiece measures how long things take.
//
// It offers two instruments built on the same bounded interval history:
// a Ticker that records the elapsed time between successive calls to Mark,
// and a ScopeTimer that records the elapsed time of enter/exit brackets and
// arranges measurements in a named tree for nested instrumentation.
//
// All types are single-threaded by design: sharing one Ticker or ScopeTimer
// across goroutines without external synchronization is a caller error.
// Callers that need concurrent measurement should use one node per
// goroutine or wrap access in their own lock.
package timepiece

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/clock"
)

// MaxRenderIntervals is the number of interval values listed when a history
// is rendered; longer histories are elided with a trailing "..." token.
const MaxRenderIntervals = 5

// IntervalHistory is an append-only, bounded sequence of elapsed-time
// samples in seconds. Once full, appending evicts the oldest sample, so the
// history always holds the most recent Capacity() samples in chronological
// order. Statistics on an empty history are zero rather than an error,
// since an incomplete history is an expected transient state.
type IntervalHistory struct {
	capacity int
	samples  []float64
}

// NewIntervalHistory creates a history that retains up to capacity samples.
func NewIntervalHistory(capacity int) (*IntervalHistory, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("interval capacity must be positive, got %d", capacity)
	}
	return &IntervalHistory{
		capacity: capacity,
		samples:  make([]float64, 0, capacity),
	}, nil
}

// Append records one sample, evicting the oldest one first when the history
// is at capacity. Samples are elapsed durations in seconds; validating that
// a value is non-negative is the caller's responsibility.
func (h *IntervalHistory) Append(v float64) {
	if len(h.samples) == h.capacity {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:len(h.samples)-1]
	}
	h.samples = append(h.samples, v)
}

// Len returns the number of retained samples.
func (h *IntervalHistory) Len() int {
	return len(h.samples)
}

// Capacity returns the maximum number of retained samples.
func (h *IntervalHistory) Capacity() int {
	return h.capacity
}

// Samples returns a copy of the retained samples in chronological order.
func (h *IntervalHistory) Samples() []float64 {
	out := make([]float64, len(h.samples))
	copy(out, h.samples)
	return out
}

// Min returns the shortest recorded interval in seconds, or 0 when empty.
func (h *IntervalHistory) Min() float64 {
	if len(h.samples) == 0 {
		return 0.0
	}
	m := h.samples[0]
	for _, v := range h.samples[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the longest recorded interval in seconds, or 0 when empty.
func (h *IntervalHistory) Max() float64 {
	if len(h.samples) == 0 {
		return 0.0
	}
	m := h.samples[0]
	for _, v := range h.samples[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Mean returns the mean recorded interval in seconds, or 0 when empty.
func (h *IntervalHistory) Mean() float64 {
	if len(h.samples) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range h.samples {
		sum += v
	}
	return sum / float64(len(h.samples))
}

// Frequency returns the mean event frequency in Hertz, derived as the
// reciprocal of Mean. It is 0 when the mean is not positive.
func (h *IntervalHistory) Frequency() float64 {
	mean := h.Mean()
	if mean > 0 {
		return 1 / mean
	}
	return 0.0
}

// statProps returns the interval and statistic fields used by renderings.
// It is empty for an empty history, so empty nodes omit the fields entirely.
func (h *IntervalHistory) statProps() []string {
	if len(h.samples) == 0 {
		return nil
	}
	shown := h.samples
	if len(shown) > MaxRenderIntervals {
		shown = shown[:MaxRenderIntervals]
	}
	vals := make([]string, 0, len(shown)+1)
	for _, v := range shown {
		vals = append(vals, fmt.Sprintf("%.4f", v))
	}
	if len(h.samples) > MaxRenderIntervals {
		vals = append(vals, "...")
	}
	return []string{
		"intervals=[" + strings.Join(vals, ", ") + "]",
		fmt.Sprintf("min=%.4f", h.Min()),
		fmt.Sprintf("mean=%.4f", h.Mean()),
		fmt.Sprintf("max=%.4f", h.Max()),
	}
}

// settings holds the shared construction knobs for Ticker and ScopeTimer.
type settings struct {
	clk    clock.Clock
	strict bool
}

// Option configures a Ticker or ScopeTimer at construction time.
type Option func(*settings) error

// WithClock replaces the clock used for interval measurement. Tests inject
// clock.NewMock() to make measured durations deterministic.
func WithClock(clk clock.Clock) Option {
	return func(s *settings) error {
		if clk == nil {
			return fmt.Errorf("clock must not be nil")
		}
		s.clk = clk
		return nil
	}
}

// WithStrictReentry makes ScopeTimer.Enter panic when the timer is already
// active instead of silently overwriting the start time. The lenient default
// matches the historical behavior; strict mode surfaces unbalanced brackets
// early. The option has no effect on a Ticker.
func WithStrictReentry() Option {
	return func(s *settings) error {
		s.strict = true
		return nil
	}
}

// applyOptions resolves options on top of the defaults.
func applyOptions(opts []Option) (settings, error) {
	s := settings{clk: clock.New()}
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return settings{}, err
		}
	}
	return s, nil
}
