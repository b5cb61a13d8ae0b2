// Package annotation draws geometric and text overlays on video frames
// through pluggable rendering backends.
//
// Annotations are a small fixed set of shapes described in normalized
// coordinates, where (0, 0) is the top-left and (1, 1) the bottom-right of
// the target frame. Drivers translate the shapes to a concrete backend: an
// in-memory image, or any media context that can draw primitives itself.
package annotation

import (
	"fmt"
	"time"
)

// TimestampFormat is the text layout used by NewTimestampAnnotation.
const TimestampFormat = "2006-01-02 15:04:05"

// Point is a position in normalized frame coordinates.
type Point struct {
	X float64
	Y float64
}

// ToPoint converts common two-element forms into a Point. It accepts a
// Point, a [2]float64 array, or a float slice of length two.
func ToPoint(value any) (Point, error) {
	switch v := value.(type) {
	case Point:
		return v, nil
	case *Point:
		return *v, nil
	case [2]float64:
		return Point{X: v[0], Y: v[1]}, nil
	case []float64:
		if len(v) != 2 {
			return Point{}, fmt.Errorf("point slice must have 2 elements, got %d", len(v))
		}
		return Point{X: v[0], Y: v[1]}, nil
	case []float32:
		if len(v) != 2 {
			return Point{}, fmt.Errorf("point slice must have 2 elements, got %d", len(v))
		}
		return Point{X: float64(v[0]), Y: float64(v[1])}, nil
	default:
		return Point{}, fmt.Errorf("cannot convert %T to a point", value)
	}
}

// Annotation is one renderable overlay shape. The set of implementations is
// fixed; drivers dispatch on the concrete type.
type Annotation interface {
	annotation()
}

// LabelAnnotation places text at a point.
type LabelAnnotation struct {
	Point Point
	Text  string
}

func (LabelAnnotation) annotation() {}

// RectAnnotation is an axis-aligned rectangle between two corner points.
type RectAnnotation struct {
	Point1 Point
	Point2 Point
}

func (RectAnnotation) annotation() {}

// LineAnnotation is a straight segment between two points. A Thickness of
// zero draws a one-pixel line.
type LineAnnotation struct {
	Point1    Point
	Point2    Point
	Thickness int
}

func (LineAnnotation) annotation() {}

// MarkerAnnotation highlights a single point.
type MarkerAnnotation struct {
	Point Point
}

func (MarkerAnnotation) annotation() {}

// NewTimestampAnnotation builds a label showing ts at the given point,
// formatted with TimestampFormat.
func NewTimestampAnnotation(ts time.Time, at Point) LabelAnnotation {
	return LabelAnnotation{Point: at, Text: ts.Format(TimestampFormat)}
}
