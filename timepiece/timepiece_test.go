package timepiece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewIntervalHistoryCapacity rejects non-positive capacities and accepts
// positive ones.
func TestNewIntervalHistoryCapacity(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		expectError bool
	}{
		{name: "zero capacity", capacity: 0, expectError: true},
		{name: "negative capacity", capacity: -3, expectError: true},
		{name: "single slot", capacity: 1, expectError: false},
		{name: "typical capacity", capacity: 10, expectError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewIntervalHistory(tt.capacity)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, h)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.capacity, h.Capacity())
				assert.Zero(t, h.Len())
			}
		})
	}
}

// TestIntervalHistoryBounded checks the FIFO eviction property: after N
// appends to a history of capacity C, the stored samples equal the last
// min(N, C) appended values in original order.
func TestIntervalHistoryBounded(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		appends  []float64
		expected []float64
	}{
		{
			name:     "under capacity",
			capacity: 5,
			appends:  []float64{0.1, 0.2, 0.3},
			expected: []float64{0.1, 0.2, 0.3},
		},
		{
			name:     "exactly at capacity",
			capacity: 3,
			appends:  []float64{0.1, 0.2, 0.3},
			expected: []float64{0.1, 0.2, 0.3},
		},
		{
			name:     "evicts oldest first",
			capacity: 3,
			appends:  []float64{0.1, 0.2, 0.3, 0.4, 0.5},
			expected: []float64{0.3, 0.4, 0.5},
		},
		{
			name:     "single slot keeps newest",
			capacity: 1,
			appends:  []float64{0.1, 0.2, 0.3},
			expected: []float64{0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewIntervalHistory(tt.capacity)
			require.NoError(t, err)
			for _, v := range tt.appends {
				h.Append(v)
			}
			assert.Equal(t, tt.expected, h.Samples())
			assert.Equal(t, len(tt.expected), h.Len())
		})
	}
}

// TestIntervalHistoryStatistics covers min/max/mean/frequency, including the
// vacuous-zero policy on an empty history.
func TestIntervalHistoryStatistics(t *testing.T) {
	tests := []struct {
		name     string
		appends  []float64
		min      float64
		max      float64
		mean     float64
		freq     float64
	}{
		{
			name:    "empty history is all zeros",
			appends: nil,
			min:     0.0, max: 0.0, mean: 0.0, freq: 0.0,
		},
		{
			name:    "single sample",
			appends: []float64{0.5},
			min:     0.5, max: 0.5, mean: 0.5, freq: 2.0,
		},
		{
			name:    "several samples",
			appends: []float64{0.1, 0.4, 0.25},
			min:     0.1, max: 0.4, mean: 0.25, freq: 4.0,
		},
		{
			name:    "all zero samples have zero frequency",
			appends: []float64{0.0, 0.0},
			min:     0.0, max: 0.0, mean: 0.0, freq: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewIntervalHistory(10)
			require.NoError(t, err)
			for _, v := range tt.appends {
				h.Append(v)
			}
			assert.InDelta(t, tt.min, h.Min(), 1e-9)
			assert.InDelta(t, tt.max, h.Max(), 1e-9)
			assert.InDelta(t, tt.mean, h.Mean(), 1e-9)
			assert.InDelta(t, tt.freq, h.Frequency(), 1e-9)
		})
	}
}

// TestIntervalHistorySamplesIsCopy guards against callers mutating the
// internal sample storage through the accessor.
func TestIntervalHistorySamplesIsCopy(t *testing.T) {
	h, err := NewIntervalHistory(4)
	require.NoError(t, err)
	h.Append(0.1)
	h.Append(0.2)

	samples := h.Samples()
	samples[0] = 99.0

	assert.Equal(t, []float64{0.1, 0.2}, h.Samples())
}

// TestWithClockNil rejects a nil clock at construction time.
func TestWithClockNil(t *testing.T) {
	_, err := NewTicker(5, WithClock(nil))
	require.Error(t, err)

	_, err = NewScopeTimer("root", 5, WithClock(nil))
	require.Error(t, err)
}
