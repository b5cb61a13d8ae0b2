package annotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToPoint accepts the supported two-element forms and rejects the rest.
func TestToPoint(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		expected    Point
		expectError bool
	}{
		{name: "from point", input: Point{X: 0.3, Y: 0.4}, expected: Point{X: 0.3, Y: 0.4}},
		{name: "from pointer", input: &Point{X: 0.3, Y: 0.4}, expected: Point{X: 0.3, Y: 0.4}},
		{name: "from array", input: [2]float64{0.3, 0.4}, expected: Point{X: 0.3, Y: 0.4}},
		{name: "from slice", input: []float64{0.3, 0.4}, expected: Point{X: 0.3, Y: 0.4}},
		{name: "from float32 slice", input: []float32{0.5, 0.25}, expected: Point{X: 0.5, Y: 0.25}},
		{name: "slice too short", input: []float64{0.3}, expectError: true},
		{name: "slice too long", input: []float64{0.3, 0.4, 0.5}, expectError: true},
		{name: "unsupported type", input: "0.3,0.4", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ToPoint(tt.input)
			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, p)
			}
		})
	}
}

// TestNewTimestampAnnotation checks the rendered timestamp text and origin.
func TestNewTimestampAnnotation(t *testing.T) {
	now := time.Date(2022, 2, 22, 22, 22, 22, 0, time.UTC)
	origin := Point{X: 0.3, Y: 0.7}

	ann := NewTimestampAnnotation(now, origin)

	assert.Equal(t, "2022-02-22 22:22:22", ann.Text)
	assert.Equal(t, origin, ann.Point)
}
