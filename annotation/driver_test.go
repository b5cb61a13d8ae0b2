package annotation

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedCall captures one primitive drawn on the recording context.
type recordedCall struct {
	op   string
	text string
	args []float64
}

// recordingContext is a MediaContext that records every call for assertions.
type recordingContext struct {
	calls []recordedCall
}

func (r *recordingContext) AddRect(x1, y1, x2, y2 float64) {
	r.calls = append(r.calls, recordedCall{op: "rect", args: []float64{x1, y1, x2, y2}})
}

func (r *recordingContext) AddLabel(text string, x, y float64) {
	r.calls = append(r.calls, recordedCall{op: "label", text: text, args: []float64{x, y}})
}

func (r *recordingContext) AddLine(x1, y1, x2, y2 float64) {
	r.calls = append(r.calls, recordedCall{op: "line", args: []float64{x1, y1, x2, y2}})
}

func (r *recordingContext) AddMarker(x, y float64) {
	r.calls = append(r.calls, recordedCall{op: "marker", args: []float64{x, y}})
}

// TestMediaDriverRender dispatches each shape to the right backend call.
func TestMediaDriverRender(t *testing.T) {
	driver := NewMediaDriver()
	ctx := &recordingContext{}

	annotations := []Annotation{
		RectAnnotation{Point1: Point{X: 0.1, Y: 0.2}, Point2: Point{X: 0.8, Y: 0.9}},
		LabelAnnotation{Point: Point{X: 0.3, Y: 0.4}, Text: "Hello World"},
		LineAnnotation{Point1: Point{X: 0.1, Y: 0.2}, Point2: Point{X: 0.3, Y: 0.4}},
		MarkerAnnotation{Point: Point{X: 0.5, Y: 0.5}},
	}
	require.NoError(t, driver.Render(annotations, ctx))

	require.Len(t, ctx.calls, 4)
	assert.Equal(t, recordedCall{op: "rect", args: []float64{0.1, 0.2, 0.8, 0.9}}, ctx.calls[0])
	assert.Equal(t, recordedCall{op: "label", text: "Hello World", args: []float64{0.3, 0.4}}, ctx.calls[1])
	assert.Equal(t, recordedCall{op: "line", args: []float64{0.1, 0.2, 0.3, 0.4}}, ctx.calls[2])
	assert.Equal(t, recordedCall{op: "marker", args: []float64{0.5, 0.5}}, ctx.calls[3])
}

// TestImageDriverRect checks that rectangle edges are painted with the line
// color and the interior is untouched.
func TestImageDriverRect(t *testing.T) {
	driver := NewImageDriver()
	img := image.NewRGBA(image.Rect(0, 0, 101, 101))

	ann := RectAnnotation{Point1: Point{X: 0.1, Y: 0.1}, Point2: Point{X: 0.5, Y: 0.5}}
	require.NoError(t, driver.Render([]Annotation{ann}, img))

	// Corners and edges carry the line color.
	assert.Equal(t, DefaultLineColor, img.RGBAAt(10, 10))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(50, 10))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(10, 50))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(50, 50))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(30, 10))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(10, 30))

	// The interior stays untouched.
	assert.Zero(t, img.RGBAAt(30, 30).A)
}

// TestImageDriverLineAndMarker checks the line walk endpoints and the
// marker cross.
func TestImageDriverLineAndMarker(t *testing.T) {
	driver := NewImageDriver()
	img := image.NewRGBA(image.Rect(0, 0, 101, 101))

	annotations := []Annotation{
		LineAnnotation{Point1: Point{X: 0.0, Y: 0.0}, Point2: Point{X: 0.2, Y: 0.2}},
		MarkerAnnotation{Point: Point{X: 0.8, Y: 0.8}},
	}
	require.NoError(t, driver.Render(annotations, img))

	// Diagonal line covers both endpoints and the midpoint.
	assert.Equal(t, DefaultLineColor, img.RGBAAt(0, 0))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(10, 10))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(20, 20))

	// Marker cross center and arms.
	assert.Equal(t, DefaultLineColor, img.RGBAAt(80, 80))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(84, 80))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(80, 76))
}

// TestImageDriverLabel checks that text drawing touches pixels near the
// anchor with the text color.
func TestImageDriverLabel(t *testing.T) {
	driver := NewImageDriver()
	img := image.NewRGBA(image.Rect(0, 0, 101, 101))

	ann := LabelAnnotation{Point: Point{X: 0.1, Y: 0.5}, Text: "Hi"}
	require.NoError(t, driver.Render([]Annotation{ann}, img))

	// The baseline anchor is at (10, 50); glyphs extend above it.
	found := false
	for y := 35; y <= 55 && !found; y++ {
		for x := 5; x <= 40; x++ {
			if img.RGBAAt(x, y).A != 0 {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "expected label glyph pixels near the anchor")
}

// TestImageDriverMarkerClipping draws at the frame edge without panicking.
func TestImageDriverMarkerClipping(t *testing.T) {
	driver := NewImageDriver()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))

	annotations := []Annotation{
		MarkerAnnotation{Point: Point{X: 0.0, Y: 0.0}},
		MarkerAnnotation{Point: Point{X: 1.0, Y: 1.0}},
	}
	require.NoError(t, driver.Render(annotations, img))

	assert.Equal(t, DefaultLineColor, img.RGBAAt(0, 0))
	assert.Equal(t, DefaultLineColor, img.RGBAAt(19, 19))
}
